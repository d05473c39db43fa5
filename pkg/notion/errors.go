package notion

import "fmt"

// APIError is returned for any non-2xx response.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Code       string
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("notion API %s %s error %d (%s): %s", e.Method, e.Path, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("notion API %s %s error %d", e.Method, e.Path, e.StatusCode)
}

// Payload returns the raw response body.
func (e *APIError) Payload() string {
	return e.Body
}
