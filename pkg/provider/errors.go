package provider

import (
	"errors"
	"fmt"
)

// amadeusSystemErrorCode is the Amadeus "SYSTEM ERROR HAS OCCURRED"
// code. Together with any 5xx status it marks an outage worth falling
// back on; everything else is treated as terminal.
const amadeusSystemErrorCode = 141

// APIError is a non-2xx response from a provider.
type APIError struct {
	Provider   string
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s: status %d (code %d): %s", e.Provider, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Message)
}

// FallbackEligible reports whether the failure qualifies for trying the
// fallback provider.
func (e *APIError) FallbackEligible() bool {
	return e.StatusCode >= 500 || e.Code == amadeusSystemErrorCode
}

func fallbackEligible(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.FallbackEligible()
}
