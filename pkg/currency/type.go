package currency

import (
	"github.com/shopspring/decimal"

	pkghttp "salesreport-srv/pkg/http"
)

// CurrencyConfig holds the configuration for the exchange-rate client.
type CurrencyConfig struct {
	BaseURL string
	APIKey  string
}

// currencyImpl implements ICurrency against the freecurrencyapi-style
// `/v1/latest` endpoint.
type currencyImpl struct {
	baseURL    string
	apiKey     string
	httpClient pkghttp.IClient
}

// latestResponse is the provider response body.
type latestResponse struct {
	Data map[string]decimal.Decimal `json:"data"`
}
