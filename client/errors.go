package client

import (
	"errors"

	"github.com/jplattus/daily-time-tracking-mcp/client/internal/types"
)

// APIError is the uniform error shape produced by the SDK: a fixed
// human-readable message plus the upstream status code, or status 0 for
// failures that happened before a response was received.
type APIError = types.APIError

// StatusCode extracts the upstream HTTP status from err, if err carries
// one. Transport-level failures report ok=false.
func StatusCode(err error) (code int, ok bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
		return apiErr.StatusCode, true
	}
	return 0, false
}
