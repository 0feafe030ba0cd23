package model

import "fmt"

// ProviderError reports a failed call to one provider: a non-success HTTP
// status or a malformed payload. It is scoped to that provider and never
// escapes the aggregator.
type ProviderError struct {
	Provider   string
	StatusCode int // zero when the failure was not an HTTP status
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: HTTP %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
