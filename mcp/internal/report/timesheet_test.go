package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jplattus/daily-time-tracking-mcp/client"
)

func TestTimesheet_SevenDays(t *testing.T) {
	// Seven days, three of them empty.
	days := []client.TimesheetDay{
		{Date: "2024-01-01", Activities: []client.TimesheetActivity{
			{Activity: "Coding", Group: strptr("Work"), Duration: 3600},
			{Activity: "Email", Duration: 600},
		}},
		{Date: "2024-01-02", Activities: nil},
		{Date: "2024-01-03", Activities: []client.TimesheetActivity{
			{Activity: "Coding", Group: strptr("Work"), Duration: 1800},
		}},
		{Date: "2024-01-04", Activities: nil},
		{Date: "2024-01-05", Activities: []client.TimesheetActivity{
			{Activity: "Meetings", Group: strptr("Work"), Duration: 2700},
		}},
		{Date: "2024-01-06", Activities: nil},
		{Date: "2024-01-07", Activities: []client.TimesheetActivity{
			{Activity: "Reading", Duration: 900},
		}},
	}

	rep := Timesheet("2024-01-01", "2024-01-07", days)

	assert.Equal(t, 7, rep.TotalDays)
	assert.Equal(t, 4, rep.DaysWithActivity)
	assert.Equal(t, 3, rep.DaysWithoutActivity)

	grand := 3600 + 600 + 1800 + 2700 + 900
	assert.Equal(t, grand, rep.TotalSeconds)
	// round(9600 / 7) = round(1371.43) = 1371
	assert.Equal(t, 1371, rep.AverageSecondsPerDay)
	assert.Equal(t, "22m 51s", rep.AveragePerDay)

	require.Len(t, rep.Days, 7)
	assert.Equal(t, 4200, rep.Days[0].TotalSeconds)
	assert.Equal(t, "1h 10m 0s", rep.Days[0].TotalDuration)
	assert.Equal(t, 0, rep.Days[1].TotalSeconds)
	assert.Equal(t, "0s", rep.Days[1].TotalDuration)

	// Ungrouped substitution applies inside days too.
	assert.Equal(t, UngroupedLabel, rep.Days[0].Activities[1].Group)
	assert.Equal(t, "Work", rep.Days[0].Activities[0].Group)
}

func TestTimesheet_AverageRoundsHalfUp(t *testing.T) {
	days := []client.TimesheetDay{
		{Date: "2024-01-01", Activities: []client.TimesheetActivity{{Activity: "A", Duration: 3}}},
		{Date: "2024-01-02", Activities: nil},
	}
	rep := Timesheet("2024-01-01", "2024-01-02", days)
	// 3 / 2 = 1.5, rounds to 2.
	assert.Equal(t, 2, rep.AverageSecondsPerDay)
}

func TestTimesheet_NoDays(t *testing.T) {
	rep := Timesheet("2024-01-01", "2024-01-07", nil)
	assert.Equal(t, 0, rep.TotalDays)
	assert.Equal(t, 0, rep.AverageSecondsPerDay)
	assert.Equal(t, "0s", rep.AveragePerDay)
	assert.Empty(t, rep.Days)
}
