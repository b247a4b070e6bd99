package types

// Domain entities returned by the Daily API.

// User is the account owning the configured API key.
type User struct {
	DataRetentionDays int     `json:"dataRetentionDays"`
	LastSyncedAt      *string `json:"lastSyncedAt,omitempty"`
}

// Activity is a trackable activity. ID is server-assigned and absent on
// creation requests. Group is nil for ungrouped activities.
type Activity struct {
	ID         *int    `json:"id,omitempty"`
	Name       string  `json:"name"`
	Group      *string `json:"group,omitempty"`
	LastUsedAt *string `json:"lastUsedAt,omitempty"`
	Archived   bool    `json:"archived"`
}

// SummaryEntry is one activity's total within a queried date range.
type SummaryEntry struct {
	Activity string  `json:"activity"`
	Group    *string `json:"group"`
	Duration int     `json:"duration"` // seconds
}

// TimesheetActivity is one activity's total within a single day.
type TimesheetActivity struct {
	Activity string  `json:"activity"`
	Group    *string `json:"group"`
	Duration int     `json:"duration"` // seconds
}

// TimesheetDay is one calendar day of a timesheet. Days with no tracked
// time have an empty Activities slice.
type TimesheetDay struct {
	Date       string              `json:"date"` // YYYY-MM-DD
	Activities []TimesheetActivity `json:"activities"`
}
