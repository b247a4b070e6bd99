package handlers

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jplattus/daily-time-tracking-mcp/client"
	"github.com/jplattus/daily-time-tracking-mcp/mcp/internal/dates"
)

// Every tool returns one of two envelopes: a success envelope carrying a
// human-readable message plus a structured payload, or an error envelope
// carrying a message, the IsError marker and optional detail. Errors never
// escape a handler as a Go error; the envelope is the contract.

func resultSuccess(message string, payload any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content:           []mcp.Content{mcp.NewTextContent(message)},
		StructuredContent: payload,
	}
}

func resultError(message string, detail any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError:           true,
		Content:           []mcp.Content{mcp.NewTextContent(message)},
		StructuredContent: detail,
	}
}

// resultAPIError converts a client error into the error envelope,
// attaching the upstream status code when the error carries one.
func resultAPIError(err error) *mcp.CallToolResult {
	if code, ok := client.StatusCode(err); ok {
		return resultError(err.Error(), map[string]any{"statusCode": code})
	}
	return resultError(err.Error(), nil)
}

// validateRange checks the start/end strings supplied to the summary and
// timesheet tools before anything reaches the network. The API client
// itself performs no date validation.
func validateRange(start, end string) error {
	if !dates.IsValidISODate(start) {
		return fmt.Errorf("start must be a valid date in YYYY-MM-DD format (e.g. 2024-01-31), got %q", start)
	}
	if !dates.IsValidISODate(end) {
		return fmt.Errorf("end must be a valid date in YYYY-MM-DD format (e.g. 2024-01-31), got %q", end)
	}
	// Lexicographic order matches calendar order for YYYY-MM-DD. Upstream
	// behavior on inverted ranges is unspecified, so they never leave here.
	if end < start {
		return fmt.Errorf("end %q is before start %q", end, start)
	}
	return nil
}

// optionalBool reads a boolean argument that distinguishes "absent" from
// either value: nil means the caller did not supply it and the matching
// query parameter is omitted upstream.
func optionalBool(request mcp.CallToolRequest, key string) *bool {
	v, ok := request.GetArguments()[key]
	if !ok || v == nil {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil
	}
	return &b
}
