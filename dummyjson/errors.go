package dummyjson

import "fmt"

// StatusError reports an unexpected status from a helper that needs a
// specific outcome, such as AccessToken.
type StatusError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("dummyjson: %s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("dummyjson: %s: status %d: %s", e.Op, e.StatusCode, e.Message)
}
