package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/jplattus/daily-time-tracking-mcp/client/internal/types"
)

// ListActivities retrieves all activities. includeArchived is forwarded as
// includeArchivedActivities when set and omitted when nil.
func ListActivities(ctx context.Context, httpClient *http.Client, baseURL string, includeArchived *bool) ([]types.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := url.Values{}
	setBool(q, "includeArchivedActivities", includeArchived)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, buildURL(baseURL, "/activities", q), nil)
	if err != nil {
		return nil, err
	}
	var activities []types.Activity
	if err := dispatch(httpClient, req, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// CreateActivities creates one or more activities with a single mutating
// call. The upstream returns the full resulting activity list; there is no
// per-item outcome. Validation happens here so the request never leaves the
// process with an empty name in it.
func CreateActivities(ctx context.Context, httpClient *http.Client, baseURL string, reqs []types.NewActivity, archiveExisting *bool) ([]types.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateNewActivities(reqs); err != nil {
		return nil, err
	}
	body, err := json.Marshal(reqs)
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	setBool(q, "archiveExistingActivities", archiveExisting)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, buildURL(baseURL, "/activities", q), bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	var activities []types.Activity
	if err := dispatch(httpClient, req, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}
