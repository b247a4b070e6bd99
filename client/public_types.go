package client

import "github.com/jplattus/daily-time-tracking-mcp/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	User              = types.User
	Activity          = types.Activity
	SummaryEntry      = types.SummaryEntry
	TimesheetActivity = types.TimesheetActivity
	TimesheetDay      = types.TimesheetDay

	// Requests
	NewActivity = types.NewActivity
)

// Errors re-exported in errors.go
