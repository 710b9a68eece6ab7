package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// GetRate fetches the current multiplier for converting from one currency to
// another. The two failure modes are distinguishable: ErrRateUnavailable for
// transport/provider failures, ErrMalformedResponse for unusable bodies.
func (c *currencyImpl) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	url := c.baseURL + "/v1/latest"

	body, statusCode, err := c.httpClient.Get(ctx, url, map[string]string{
		"base_currency": from,
		"currencies":    to,
	}, map[string]string{
		"apikey": c.apiKey,
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}
	if statusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: provider returned status %d", ErrRateUnavailable, statusCode)
	}

	var resp latestResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	rate, ok := resp.Data[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: missing rate for %s", ErrMalformedResponse, to)
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: non-positive rate %s", ErrMalformedResponse, rate)
	}

	return rate, nil
}
