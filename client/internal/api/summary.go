package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jplattus/daily-time-tracking-mcp/client/internal/types"
)

// GetSummary retrieves per-activity totals for the inclusive date range
// [start, end]. Dates must already be validated by the caller; this layer
// forwards them as-is.
func GetSummary(ctx context.Context, httpClient *http.Client, baseURL, start, end string, includeArchived *bool) ([]types.SummaryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("start", start)
	q.Set("end", end)
	setBool(q, "includeArchivedActivities", includeArchived)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, buildURL(baseURL, "/summary", q), nil)
	if err != nil {
		return nil, err
	}
	var entries []types.SummaryEntry
	if err := dispatch(httpClient, req, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
