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
	"github.com/jplattus/daily-time-tracking-mcp/mcp/internal/report"
)

// TimesheetHandler exposes the per-day timesheet tool.
type TimesheetHandler struct {
	client *client.Client
}

// NewTimesheetHandler creates a new timesheet handler instance.
func NewTimesheetHandler(client *client.Client) *TimesheetHandler {
	return &TimesheetHandler{client: client}
}

// RegisterTools registers the timesheet tools with the MCP server.
func (th *TimesheetHandler) RegisterTools(s *server.MCPServer) error {
	getTimesheetTool := mcp.NewTool("getTimesheet",
		mcp.WithDescription("Day-by-day breakdown of tracked time over a date range, with per-day totals and averages"),
		mcp.WithString("start", mcp.Required(), mcp.Description("Range start date, YYYY-MM-DD")),
		mcp.WithString("end", mcp.Required(), mcp.Description("Range end date, YYYY-MM-DD")),
		mcp.WithBoolean("includeArchivedActivities",
			mcp.Description("Whether archived activities are included (defaults to true; the upstream default applies when omitted)")),
	)
	s.AddTool(getTimesheetTool, th.handleGetTimesheet)
	return nil
}

func (th *TimesheetHandler) handleGetTimesheet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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
		log.Error().Err(err).Str("start", start).Str("end", end).Msg("getTimesheet range invalid")
		return resultError(err.Error(), nil), nil
	}

	log.Debug().Str("start", start).Str("end", end).Msg("handling getTimesheet request")

	began := time.Now()
	days, err := th.client.GetTimesheet(ctx, start, end, optionalBool(request, "includeArchivedActivities"))
	elapsed := time.Since(began)

	if err != nil {
		log.Error().Err(err).Str("start", start).Str("end", end).Dur("elapsed", elapsed).Msg("getTimesheet failed")
		return resultAPIError(err), nil
	}

	rep := report.Timesheet(start, end, days)
	log.Debug().
		Int("days", rep.TotalDays).
		Int("total_seconds", rep.TotalSeconds).
		Dur("elapsed", elapsed).
		Msg("getTimesheet completed")

	return resultSuccess(renderTimesheetReport(rep), rep), nil
}

func renderTimesheetReport(rep report.TimesheetReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Timesheet %s to %s: %s total over %d days (%d with activity, %d without), average %s/day",
		rep.Start, rep.End, rep.TotalDuration, rep.TotalDays,
		rep.DaysWithActivity, rep.DaysWithoutActivity, rep.AveragePerDay)
	for _, d := range rep.Days {
		if len(d.Activities) == 0 {
			fmt.Fprintf(&b, "\n\n%s: no tracked time", d.Date)
			continue
		}
		fmt.Fprintf(&b, "\n\n%s: %s", d.Date, d.TotalDuration)
		for _, a := range d.Activities {
			fmt.Fprintf(&b, "\n- %s [%s]: %s", a.Activity, a.Group, a.Duration)
		}
	}
	return b.String()
}
