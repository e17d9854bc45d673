package gateway

import "fmt"

// APIError reports a failed request against the GitHub API: either a
// non-2xx response (StatusCode set, Body carrying the upstream message)
// or a transport-level failure (StatusCode 0, Err carrying the cause).
type APIError struct {
	StatusCode int
	URL        string
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("GitHub API request for %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("GitHub API error %d for %s: %s", e.StatusCode, e.URL, e.Body)
}

func (e *APIError) Unwrap() error { return e.Err }

// ShapeError reports a response body that does not match the minimally
// expected JSON shape. It aborts the run; per-entry malformations inside
// an otherwise well-shaped payload are skipped instead.
type ShapeError struct {
	URL    string
	Detail string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected response shape from %s: %s", e.URL, e.Detail)
}
