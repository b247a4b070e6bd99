// Package report shapes raw Daily API payloads into the grouped, sorted
// and percentage-annotated structures the tools return. Everything here is
// pure: reports are recomputed per call and share no state.
package report

import (
	"math"
	"sort"
	"strconv"

	"github.com/jplattus/daily-time-tracking-mcp/client"
	"github.com/jplattus/daily-time-tracking-mcp/mcp/internal/dates"
)

// UngroupedLabel is the bucket name used for activities without a group.
const UngroupedLabel = "Ungrouped"

// GroupBucket is one group of activities, in upstream order.
type GroupBucket struct {
	Group      string            `json:"group"`
	Activities []client.Activity `json:"activities"`
}

// ActivityReport is the structured payload of the activity listing tool.
type ActivityReport struct {
	Total    int           `json:"total"`
	Active   int           `json:"active"`
	Archived int           `json:"archived"`
	Groups   []GroupBucket `json:"groups"`
}

// Activities counts and groups the given activities. Groups appear in
// first-use order; activities keep their relative order inside each group.
func Activities(activities []client.Activity) ActivityReport {
	rep := ActivityReport{Total: len(activities)}

	index := make(map[string]int)
	for _, a := range activities {
		if a.Archived {
			rep.Archived++
		}
		name := groupLabel(a.Group)
		i, ok := index[name]
		if !ok {
			i = len(rep.Groups)
			index[name] = i
			rep.Groups = append(rep.Groups, GroupBucket{Group: name})
		}
		rep.Groups[i].Activities = append(rep.Groups[i].Activities, a)
	}
	rep.Active = rep.Total - rep.Archived
	return rep
}

// SummaryRow is one activity's share of a summarized date range.
type SummaryRow struct {
	Activity   string `json:"activity"`
	Group      string `json:"group"`
	Seconds    int    `json:"seconds"`
	Duration   string `json:"duration"`
	Percentage string `json:"percentage"`
}

// SummaryReport is the structured payload of the summary tools.
type SummaryReport struct {
	Start         string       `json:"start"`
	End           string       `json:"end"`
	TotalSeconds  int          `json:"totalSeconds"`
	TotalDuration string       `json:"totalDuration"`
	Entries       []SummaryRow `json:"entries"`
}

// Summary totals and sorts the given entries for the queried range.
// Entries come out in non-increasing duration order, ties keeping their
// upstream order, each annotated with its percentage of the total.
func Summary(start, end string, entries []client.SummaryEntry) SummaryReport {
	total := 0
	for _, e := range entries {
		total += e.Duration
	}

	sorted := make([]client.SummaryEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Duration > sorted[j].Duration
	})

	rep := SummaryReport{
		Start:         start,
		End:           end,
		TotalSeconds:  total,
		TotalDuration: dates.FormatDuration(total),
	}
	for _, e := range sorted {
		rep.Entries = append(rep.Entries, SummaryRow{
			Activity:   e.Activity,
			Group:      groupLabel(e.Group),
			Seconds:    e.Duration,
			Duration:   dates.FormatDuration(e.Duration),
			Percentage: percentage(e.Duration, total),
		})
	}
	return rep
}

// percentage renders share as a one-decimal percent string, "0%" when the
// range has no tracked time at all.
func percentage(seconds, total int) string {
	if total == 0 {
		return "0%"
	}
	p := float64(seconds) / float64(total) * 100
	return strconv.FormatFloat(math.Round(p*10)/10, 'f', 1, 64) + "%"
}

func groupLabel(group *string) string {
	if group == nil || *group == "" {
		return UngroupedLabel
	}
	return *group
}
