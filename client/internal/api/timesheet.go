package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jplattus/daily-time-tracking-mcp/client/internal/types"
)

// GetTimesheet retrieves the day-by-day breakdown for the inclusive date
// range [start, end]. Day order is whatever the upstream returns.
func GetTimesheet(ctx context.Context, httpClient *http.Client, baseURL, start, end string, includeArchived *bool) ([]types.TimesheetDay, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("start", start)
	q.Set("end", end)
	setBool(q, "includeArchivedActivities", includeArchived)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, buildURL(baseURL, "/timesheet", q), nil)
	if err != nil {
		return nil, err
	}
	var days []types.TimesheetDay
	if err := dispatch(httpClient, req, &days); err != nil {
		return nil, err
	}
	return days, nil
}
