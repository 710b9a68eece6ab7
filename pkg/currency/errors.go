package currency

import "errors"

var (
	// ErrRateUnavailable means the provider could not be reached or did not
	// return a usable answer (network failure, timeout, non-2xx status).
	ErrRateUnavailable = errors.New("currency: exchange rate unavailable")
	// ErrMalformedResponse means the provider answered but the body did not
	// contain a positive rate for the requested currency.
	ErrMalformedResponse = errors.New("currency: malformed provider response")
)
