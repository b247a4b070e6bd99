package dates

import "fmt"

// FormatDuration renders a non-negative number of seconds as "2h 5m 0s",
// dropping the hour component below one hour and the minute component
// below one minute. Negative input is the upstream's problem and is
// rendered as-is in the seconds position.
func FormatDuration(totalSeconds int) string {
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
