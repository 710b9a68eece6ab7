package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRow is a raw parsed CSV record. Immutable once parsed.
type ProductRow struct {
	Product string
	Sales   int
	Amount  decimal.Decimal // USD
}

// RegionalRecord is a read-only per-region sales figure from the regional
// data store. One product may map to zero or many records.
type RegionalRecord struct {
	Region  string
	Product string
	Sales   int
	Amount  decimal.Decimal // USD
}

// ExchangeRate is a single conversion multiplier snapshot. Fetched fresh per
// processing run, never persisted.
type ExchangeRate struct {
	From      string
	To        string
	Rate      decimal.Decimal
	FetchedAt time.Time
}

// ReportRow is one line of the consolidated report. AmountEUR is always
// AmountUSD times the job's rate snapshot, rounded to 2 decimal places.
type ReportRow struct {
	Product   string
	Region    string
	Sales     int
	AmountUSD decimal.Decimal
	AmountEUR decimal.Decimal
}
