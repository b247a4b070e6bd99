package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jplattus/daily-time-tracking-mcp/client/internal/types"
)

// dispatch issues a single request and maps the outcome onto the fixed
// status table. No retries: one attempt per call, the caller's context
// controls cancellation. out may be nil when the payload is not needed.
func dispatch(httpClient *http.Client, req *http.Request, out any) error {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return &types.APIError{Message: fmt.Sprintf("Network error: %v", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	case http.StatusNoContent:
		return nil
	default:
		return statusError(resp.StatusCode)
	}
}

func statusError(code int) *types.APIError {
	switch code {
	case http.StatusBadRequest:
		return &types.APIError{StatusCode: code, Message: "Bad Request: the request was invalid or missing required data"}
	case http.StatusUnauthorized:
		return &types.APIError{StatusCode: code, Message: "Unauthorized: invalid or missing API key"}
	case http.StatusInternalServerError:
		return &types.APIError{StatusCode: code, Message: "Internal Server Error: the server encountered an unexpected error"}
	default:
		return &types.APIError{StatusCode: code, Message: fmt.Sprintf("Unexpected response status: %d", code)}
	}
}

// setBool appends an optional boolean query parameter. A nil value means
// the parameter is omitted entirely and the upstream default applies.
func setBool(q url.Values, key string, v *bool) {
	if v == nil {
		return
	}
	if *v {
		q.Set(key, "true")
	} else {
		q.Set(key, "false")
	}
}

func buildURL(baseURL, path string, q url.Values) string {
	if len(q) == 0 {
		return baseURL + path
	}
	return baseURL + path + "?" + q.Encode()
}
