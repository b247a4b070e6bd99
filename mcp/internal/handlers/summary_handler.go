package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/jplattus/daily-time-tracking-mcp/client"
	"github.com/jplattus/daily-time-tracking-mcp/mcp/internal/dates"
	"github.com/jplattus/daily-time-tracking-mcp/mcp/internal/report"
)

// SummaryHandler exposes the date-range summary tools: an explicit range
// and the quick periods resolved locally against the UTC calendar.
type SummaryHandler struct {
	client *client.Client

	// now is swappable so quick-period tests are deterministic.
	now func() time.Time
}

// NewSummaryHandler creates a new summary handler instance.
func NewSummaryHandler(client *client.Client) *SummaryHandler {
	return &SummaryHandler{client: client, now: time.Now}
}

// RegisterTools registers the summary tools with the MCP server.
func (sh *SummaryHandler) RegisterTools(s *server.MCPServer) error {
	periodNames := make([]string, 0, len(dates.Periods()))
	for _, p := range dates.Periods() {
		periodNames = append(periodNames, string(p))
	}

	getSummaryTool := mcp.NewTool("getSummary",
		mcp.WithDescription("Summarize tracked time per activity over a date range, sorted by duration with percentages"),
		mcp.WithString("start", mcp.Required(), mcp.Description("Range start date, YYYY-MM-DD")),
		mcp.WithString("end", mcp.Required(), mcp.Description("Range end date, YYYY-MM-DD")),
		mcp.WithBoolean("includeArchivedActivities",
			mcp.Description("Whether archived activities are included (defaults to true; the upstream default applies when omitted)")),
	)
	s.AddTool(getSummaryTool, sh.handleGetSummary)

	getQuickSummaryTool := mcp.NewTool("getQuickSummary",
		mcp.WithDescription("Summarize tracked time for a named period: "+strings.Join(periodNames, ", ")),
		mcp.WithString("period", mcp.Required(),
			mcp.Description("One of: "+strings.Join(periodNames, ", ")),
			mcp.Enum(periodNames...)),
		mcp.WithBoolean("includeArchivedActivities",
			mcp.Description("Whether archived activities are included (defaults to true; the upstream default applies when omitted)")),
	)
	s.AddTool(getQuickSummaryTool, sh.handleGetQuickSummary)

	return nil
}

func (sh *SummaryHandler) handleGetSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, err := request.RequireString("start")
	if err != nil {
		log.Error().Err(err).Msg("start parameter validation failed")
		return resultError("start parameter is required", nil), nil
	}
	end, err := request.RequireString("end")
	if err != nil {
		log.Error().Err(err).Msg("end parameter validation failed")
		return resultError("end parameter is required", nil), nil
	}
	if err := validateRange(start, end); err != nil {
		log.Error().Err(err).Str("start", start).Str("end", end).Msg("getSummary range invalid")
		return resultError(err.Error(), nil), nil
	}

	return sh.summarize(ctx, start, end, optionalBool(request, "includeArchivedActivities"), "")
}

func (sh *SummaryHandler) handleGetQuickSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	period, err := request.RequireString("period")
	if err != nil {
		log.Error().Err(err).Msg("period parameter validation failed")
		return resultError("period parameter is required", nil), nil
	}

	start, end, err := dates.ResolvePeriod(dates.Period(period), sh.now())
	if err != nil {
		log.Error().Err(err).Str("period", period).Msg("getQuickSummary period invalid")
		return resultError(err.Error(), nil), nil
	}

	return sh.summarize(ctx, start, end, optionalBool(request, "includeArchivedActivities"), period)
}

// summarize issues the single upstream summary call for [start, end] and
// renders the aggregated report. period is non-empty for quick summaries.
func (sh *SummaryHandler) summarize(ctx context.Context, start, end string, includeArchived *bool, period string) (*mcp.CallToolResult, error) {
	log.Debug().Str("start", start).Str("end", end).Str("period", period).Msg("handling summary request")

	began := time.Now()
	entries, err := sh.client.GetSummary(ctx, start, end, includeArchived)
	elapsed := time.Since(began)

	if err != nil {
		log.Error().Err(err).Str("start", start).Str("end", end).Dur("elapsed", elapsed).Msg("summary failed")
		return resultAPIError(err), nil
	}

	rep := report.Summary(start, end, entries)
	log.Debug().
		Int("entries", len(rep.Entries)).
		Int("total_seconds", rep.TotalSeconds).
		Dur("elapsed", elapsed).
		Msg("summary completed")

	return resultSuccess(renderSummaryReport(rep, period), rep), nil
}

func renderSummaryReport(rep report.SummaryReport, period string) string {
	var b strings.Builder
	if period != "" {
		fmt.Fprintf(&b, "Time summary for %s (%s to %s): %s total", period, rep.Start, rep.End, rep.TotalDuration)
	} else {
		fmt.Fprintf(&b, "Time summary %s to %s: %s total", rep.Start, rep.End, rep.TotalDuration)
	}
	if len(rep.Entries) == 0 {
		b.WriteString("\n\nNo tracked time in this range.")
		return b.String()
	}
	for _, e := range rep.Entries {
		fmt.Fprintf(&b, "\n- %s [%s]: %s (%s)", e.Activity, e.Group, e.Duration, e.Percentage)
	}
	return b.String()
}
