package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jplattus/daily-time-tracking-mcp/client/internal/types"
)

func TestGetUser_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/user" {
			t.Fatalf("expected /user, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Fatalf("expected Accept application/json, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"dataRetentionDays": 90, "lastSyncedAt": "2024-01-01T10:00:00Z"}`))
	}))
	defer srv.Close()

	user, err := GetUser(context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user.DataRetentionDays != 90 {
		t.Fatalf("expected 90 retention days, got %d", user.DataRetentionDays)
	}
	if user.LastSyncedAt == nil || *user.LastSyncedAt != "2024-01-01T10:00:00Z" {
		t.Fatalf("unexpected lastSyncedAt: %v", user.LastSyncedAt)
	}
}

func TestGetUser_StatusMapping(t *testing.T) {
	t.Parallel()
	cases := []struct {
		status  int
		message string
	}{
		{http.StatusBadRequest, "Bad Request: the request was invalid or missing required data"},
		{http.StatusUnauthorized, "Unauthorized: invalid or missing API key"},
		{http.StatusInternalServerError, "Internal Server Error: the server encountered an unexpected error"},
		{http.StatusTeapot, "Unexpected response status: 418"},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))

		_, err := GetUser(context.Background(), srv.Client(), srv.URL)
		srv.Close()

		var apiErr *types.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("status %d: expected *types.APIError, got %v", tc.status, err)
		}
		if apiErr.StatusCode != tc.status {
			t.Fatalf("status %d: got code %d", tc.status, apiErr.StatusCode)
		}
		if apiErr.Message != tc.message {
			t.Fatalf("status %d: got message %q, want %q", tc.status, apiErr.Message, tc.message)
		}
	}
}

func TestGetUser_NetworkError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := GetUser(context.Background(), http.DefaultClient, srv.URL)

	var apiErr *types.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *types.APIError, got %v", err)
	}
	if apiErr.StatusCode != 0 {
		t.Fatalf("transport errors carry no status code, got %d", apiErr.StatusCode)
	}
	if !strings.HasPrefix(apiErr.Message, "Network error: ") {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
}

func TestListActivities_QueryParamOmittedWhenNil(t *testing.T) {
	t.Parallel()
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	if _, err := ListActivities(context.Background(), srv.Client(), srv.URL, nil); err != nil {
		t.Fatalf("ListActivities: %v", err)
	}
	if gotQuery != "" {
		t.Fatalf("expected empty query, got %q", gotQuery)
	}

	f := false
	if _, err := ListActivities(context.Background(), srv.Client(), srv.URL, &f); err != nil {
		t.Fatalf("ListActivities: %v", err)
	}
	if gotQuery != "includeArchivedActivities=false" {
		t.Fatalf("expected explicit false param, got %q", gotQuery)
	}
}

func TestListActivities_ParsesPayload(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("includeArchivedActivities") != "true" {
			t.Fatalf("expected includeArchivedActivities=true, got %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "Coding", "group": "Work", "archived": false},
			{"id": 2, "name": "Browsing", "archived": true}
		]`))
	}))
	defer srv.Close()

	tr := true
	activities, err := ListActivities(context.Background(), srv.Client(), srv.URL, &tr)
	if err != nil {
		t.Fatalf("ListActivities: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(activities))
	}
	if activities[0].Group == nil || *activities[0].Group != "Work" {
		t.Fatalf("unexpected group: %v", activities[0].Group)
	}
	if activities[1].Group != nil {
		t.Fatalf("expected nil group, got %v", *activities[1].Group)
	}
	if !activities[1].Archived {
		t.Fatal("expected archived flag to parse")
	}
}

func TestGetSummary_ForwardsRange(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/summary" {
			t.Fatalf("expected /summary, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("start") != "2024-01-01" || q.Get("end") != "2024-01-07" {
			t.Fatalf("unexpected range: %s", r.URL.RawQuery)
		}
		if q.Has("includeArchivedActivities") {
			t.Fatalf("param should be omitted: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[{"activity": "Coding", "group": null, "duration": 3600}]`))
	}))
	defer srv.Close()

	entries, err := GetSummary(context.Background(), srv.Client(), srv.URL, "2024-01-01", "2024-01-07", nil)
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if len(entries) != 1 || entries[0].Activity != "Coding" || entries[0].Duration != 3600 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	if entries[0].Group != nil {
		t.Fatalf("expected null group to parse as nil, got %v", *entries[0].Group)
	}
}

func TestGetTimesheet_ParsesDays(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/timesheet" {
			t.Fatalf("expected /timesheet, got %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[
			{"date": "2024-01-01", "activities": [{"activity": "Coding", "group": "Work", "duration": 1800}]},
			{"date": "2024-01-02", "activities": []}
		]`))
	}))
	defer srv.Close()

	days, err := GetTimesheet(context.Background(), srv.Client(), srv.URL, "2024-01-01", "2024-01-02", nil)
	if err != nil {
		t.Fatalf("GetTimesheet: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if len(days[0].Activities) != 1 || days[0].Activities[0].Duration != 1800 {
		t.Fatalf("unexpected day 0: %+v", days[0])
	}
	if len(days[1].Activities) != 0 {
		t.Fatalf("expected empty day, got %+v", days[1])
	}
}

func TestCreateActivities_PostsBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/activities" {
			t.Fatalf("expected /activities, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("archiveExistingActivities") != "true" {
			t.Fatalf("expected archiveExistingActivities=true, got %q", r.URL.RawQuery)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Fatalf("expected JSON content type, got %q", got)
		}

		var body []types.NewActivity
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(body) != 2 || body[0].Name != "Coding" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if body[0].Group == nil || *body[0].Group != "Work" {
			t.Fatalf("unexpected group: %v", body[0].Group)
		}

		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "Coding", "group": "Work", "archived": false},
			{"id": 2, "name": "Reading", "archived": false}
		]`))
	}))
	defer srv.Close()

	group := "Work"
	tr := true
	activities, err := CreateActivities(context.Background(), srv.Client(), srv.URL, []types.NewActivity{
		{Name: "Coding", Group: &group},
		{Name: "Reading"},
	}, &tr)
	if err != nil {
		t.Fatalf("CreateActivities: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("expected the full result set, got %d", len(activities))
	}
}

func TestCreateActivities_ValidationBeforeNetwork(t *testing.T) {
	t.Parallel()
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := CreateActivities(context.Background(), srv.Client(), srv.URL, []types.NewActivity{{Name: ""}}, nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "activities[0].name") {
		t.Fatalf("error should name the offending field, got %q", err.Error())
	}
	if called {
		t.Fatal("request must not reach the network on validation failure")
	}

	if _, err := CreateActivities(context.Background(), srv.Client(), srv.URL, nil, nil); err == nil {
		t.Fatal("expected error for empty request")
	}
}

func TestDispatch_NoContent(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+"/user", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := dispatch(srv.Client(), req, nil); err != nil {
		t.Fatalf("204 must be a success, got %v", err)
	}
}

func TestContextCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := GetUser(ctx, http.DefaultClient, "http://localhost:0"); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
