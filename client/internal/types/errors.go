package types

// APIError is the single error shape produced by the Daily API client.
// StatusCode is the upstream HTTP status, or 0 when the failure happened
// before a response was received (DNS, connect, TLS, ...).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }
