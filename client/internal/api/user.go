package api

import (
	"context"
	"net/http"

	"github.com/jplattus/daily-time-tracking-mcp/client/internal/types"
)

// GetUser retrieves the account that owns the configured API key.
func GetUser(ctx context.Context, httpClient *http.Client, baseURL string) (*types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/user", nil)
	if err != nil {
		return nil, err
	}
	var user types.User
	if err := dispatch(httpClient, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
