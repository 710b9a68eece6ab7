package usecase

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"salesreport-srv/internal/model"
)

// buildReportRows consolidates the regional records into the final report.
// Rows are grouped by product in extraction order, each group sorted by
// region. missing lists extracted products with no regional data at all.
func buildReportRows(products []string, records []model.RegionalRecord, rate decimal.Decimal) (rows []model.ReportRow, missing []string) {
	grouped := make(map[string][]model.RegionalRecord, len(products))
	for _, rec := range records {
		key := strings.ToLower(rec.Product)
		grouped[key] = append(grouped[key], rec)
	}

	for _, product := range products {
		group := grouped[strings.ToLower(product)]
		if len(group) == 0 {
			missing = append(missing, product)
			continue
		}

		sort.Slice(group, func(i, j int) bool {
			return group[i].Region < group[j].Region
		})

		for _, rec := range group {
			rows = append(rows, model.ReportRow{
				Product:   rec.Product,
				Region:    rec.Region,
				Sales:     rec.Sales,
				AmountUSD: rec.Amount,
				AmountEUR: rec.Amount.Mul(rate).Round(2),
			})
		}
	}

	return rows, missing
}
