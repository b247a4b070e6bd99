package client

import (
	"context"
	"net/http"
	"time"

	"github.com/jplattus/daily-time-tracking-mcp/client/internal/api"
)

// DefaultBaseURL is the production Daily API host.
const DefaultBaseURL = "https://api.dailytimetracking.com"

// Client is a thin SDK for the Daily time-tracking API. It is stateless
// and safe for concurrent use; every method issues exactly one HTTP call.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New constructs a Client for the given base URL and API key. Additional
// options can be provided via functional arguments.
func New(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if apiKey == "" {
		panic("apiKey cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	// Wrap the HTTP transport so every request carries the API-Key header.
	c.wrapTransportWithAPIKey()

	return c
}

// wrapTransportWithAPIKey wraps the HTTP client's transport so the
// configured secret is attached to every outbound request.
func (c *Client) wrapTransportWithAPIKey() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &apiKeyTransport{
		base:   baseTransport,
		apiKey: c.apiKey,
	}
}

// apiKeyTransport wraps an http.RoundTripper to add the API-Key header.
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("API-Key", t.apiKey)
	return t.base.RoundTrip(cloned)
}

// GetUser retrieves the account owning the configured API key.
func (c *Client) GetUser(ctx context.Context) (*User, error) {
	user, err := api.GetUser(ctx, c.http, c.baseURL)
	observe("user", err)
	return user, err
}

// ListActivities retrieves all activities. A nil includeArchived omits the
// query parameter so the upstream default applies.
func (c *Client) ListActivities(ctx context.Context, includeArchived *bool) ([]Activity, error) {
	activities, err := api.ListActivities(ctx, c.http, c.baseURL, includeArchived)
	observe("activities", err)
	return activities, err
}

// GetSummary retrieves per-activity totals for the inclusive range
// [start, end]. The client does not validate dates; callers do.
func (c *Client) GetSummary(ctx context.Context, start, end string, includeArchived *bool) ([]SummaryEntry, error) {
	entries, err := api.GetSummary(ctx, c.http, c.baseURL, start, end, includeArchived)
	observe("summary", err)
	return entries, err
}

// GetTimesheet retrieves the day-by-day breakdown for the inclusive range
// [start, end].
func (c *Client) GetTimesheet(ctx context.Context, start, end string, includeArchived *bool) ([]TimesheetDay, error) {
	days, err := api.GetTimesheet(ctx, c.http, c.baseURL, start, end, includeArchived)
	observe("timesheet", err)
	return days, err
}

// CreateActivities creates one or more activities with a single mutating
// call and returns the upstream's full result set.
func (c *Client) CreateActivities(ctx context.Context, reqs []NewActivity, archiveExisting *bool) ([]Activity, error) {
	activities, err := api.CreateActivities(ctx, c.http, c.baseURL, reqs, archiveExisting)
	observe("create_activities", err)
	return activities, err
}
