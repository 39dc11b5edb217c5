package anythingllm

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned by operations the AnythingLLM v1 API has no
	// endpoint for.
	ErrUnsupported = errors.New("operation not supported by AnythingLLM API v1")

	// ErrWorkspaceRequired is returned when an agent is created without a
	// workspace slug.
	ErrWorkspaceRequired = errors.New("workspaceSlug is required to create an agent")
)

// APIError is returned whenever the server answers with a non-2xx status.
// Body holds the raw response text, unmodified.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	kind := "API"
	if e.Op == opUpload {
		kind = "upload"
	}
	return fmt.Sprintf("AnythingLLM %s error: %d - %s", kind, e.StatusCode, e.Body)
}

// IsStatus reports whether err carries an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}
