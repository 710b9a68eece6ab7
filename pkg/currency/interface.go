package currency

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	pkghttp "salesreport-srv/pkg/http"
)

// ICurrency defines the interface for fetching live exchange rates.
// Implementations are safe for concurrent use.
type ICurrency interface {
	GetRate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// NewCurrency creates a new exchange-rate client.
func NewCurrency(cfg CurrencyConfig) (ICurrency, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("currency: base URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("currency: API key is required")
	}
	return &currencyImpl{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   10 * time.Second,
			Retries:   1,
			RetryWait: 500 * time.Millisecond,
		}),
	}, nil
}
