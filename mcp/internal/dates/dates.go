// Package dates holds the pure calendar helpers behind the reporting
// tools: ISO date validation, canned period resolution and duration
// formatting. Everything operates on the UTC calendar.
package dates

import (
	"fmt"
	"regexp"
	"time"
)

const isoLayout = "2006-01-02"

var isoPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidISODate reports whether s is a YYYY-MM-DD string naming a real
// calendar date. Both the literal pattern and calendar validity are
// required; "2024-02-30" fails the same way "2024/02/30" does.
func IsValidISODate(s string) bool {
	if !isoPattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(isoLayout, s)
	return err == nil
}

// Period is a canned reporting range resolved locally, without calling
// the upstream.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	PeriodThisWeek  Period = "this_week"
	PeriodLastWeek  Period = "last_week"
	PeriodThisMonth Period = "this_month"
	PeriodLast7Days Period = "last_7_days"
	PeriodLast30Day Period = "last_30_days"
)

// Periods lists every valid period tag, in the order shown to callers.
func Periods() []Period {
	return []Period{
		PeriodToday, PeriodYesterday,
		PeriodThisWeek, PeriodLastWeek, PeriodThisMonth,
		PeriodLast7Days, PeriodLast30Day,
	}
}

// ResolvePeriod computes the inclusive [start, end] range for tag relative
// to now, on the UTC calendar. Weeks run Sunday through Saturday.
func ResolvePeriod(tag Period, now time.Time) (start, end string, err error) {
	utc := now.UTC()
	today := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)

	switch tag {
	case PeriodToday:
		return iso(today), iso(today), nil
	case PeriodYesterday:
		d := today.AddDate(0, 0, -1)
		return iso(d), iso(d), nil
	case PeriodThisWeek:
		// Most recent Sunday on or before today.
		sunday := today.AddDate(0, 0, -int(today.Weekday()))
		return iso(sunday), iso(today), nil
	case PeriodLastWeek:
		// The Saturday immediately before this week's Sunday, back 6 days.
		lastSaturday := today.AddDate(0, 0, -int(today.Weekday())-1)
		return iso(lastSaturday.AddDate(0, 0, -6)), iso(lastSaturday), nil
	case PeriodThisMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return iso(first), iso(today), nil
	case PeriodLast7Days:
		return iso(today.AddDate(0, 0, -7)), iso(today), nil
	case PeriodLast30Day:
		return iso(today.AddDate(0, 0, -30)), iso(today), nil
	default:
		return "", "", fmt.Errorf("invalid period %q: must be one of %v", string(tag), Periods())
	}
}

func iso(t time.Time) string { return t.Format(isoLayout) }
