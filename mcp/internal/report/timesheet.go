package report

import (
	"math"

	"github.com/jplattus/daily-time-tracking-mcp/client"
	"github.com/jplattus/daily-time-tracking-mcp/mcp/internal/dates"
)

// TimesheetRow is one activity's total within a single day.
type TimesheetRow struct {
	Activity string `json:"activity"`
	Group    string `json:"group"`
	Seconds  int    `json:"seconds"`
	Duration string `json:"duration"`
}

// TimesheetDay is one day of the timesheet report.
type TimesheetDay struct {
	Date          string         `json:"date"`
	TotalSeconds  int            `json:"totalSeconds"`
	TotalDuration string         `json:"totalDuration"`
	Activities    []TimesheetRow `json:"activities"`
}

// TimesheetReport is the structured payload of the timesheet tool.
type TimesheetReport struct {
	Start                string         `json:"start"`
	End                  string         `json:"end"`
	TotalDays            int            `json:"totalDays"`
	DaysWithActivity     int            `json:"daysWithActivity"`
	DaysWithoutActivity  int            `json:"daysWithoutActivity"`
	TotalSeconds         int            `json:"totalSeconds"`
	TotalDuration        string         `json:"totalDuration"`
	AverageSecondsPerDay int            `json:"averageSecondsPerDay"`
	AveragePerDay        string         `json:"averagePerDay"`
	Days                 []TimesheetDay `json:"days"`
}

// Timesheet computes per-day and grand totals for the queried range. Days
// stay in upstream order; the average is over all returned days, active or
// not, and is 0 when there are none.
func Timesheet(start, end string, days []client.TimesheetDay) TimesheetReport {
	rep := TimesheetReport{
		Start:     start,
		End:       end,
		TotalDays: len(days),
	}

	for _, day := range days {
		d := TimesheetDay{Date: day.Date}
		for _, a := range day.Activities {
			d.TotalSeconds += a.Duration
			d.Activities = append(d.Activities, TimesheetRow{
				Activity: a.Activity,
				Group:    groupLabel(a.Group),
				Seconds:  a.Duration,
				Duration: dates.FormatDuration(a.Duration),
			})
		}
		d.TotalDuration = dates.FormatDuration(d.TotalSeconds)
		if len(day.Activities) > 0 {
			rep.DaysWithActivity++
		} else {
			rep.DaysWithoutActivity++
		}
		rep.TotalSeconds += d.TotalSeconds
		rep.Days = append(rep.Days, d)
	}

	if rep.TotalDays > 0 {
		rep.AverageSecondsPerDay = int(math.Round(float64(rep.TotalSeconds) / float64(rep.TotalDays)))
	}
	rep.TotalDuration = dates.FormatDuration(rep.TotalSeconds)
	rep.AveragePerDay = dates.FormatDuration(rep.AverageSecondsPerDay)
	return rep
}
