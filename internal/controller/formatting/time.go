package formatting

import (
	"fmt"
	"time"
)

// API dates are YYYY-MM-DD, times are HH:MM.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// FormatDate renders an API date for display, passing bad input through
// unchanged.
func FormatDate(date string) string {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return parsed.Format("02/01/2006")
}

// FormatTimeRange renders a start/end time pair.
func FormatTimeRange(start, end string) string {
	return fmt.Sprintf("%s-%s", start, end)
}

// FormatDuration renders a duration in minutes.
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatClock renders a timestamp as HH:MM for the chat thread.
func FormatClock(t time.Time) string {
	return t.Format(TimeLayout)
}

// FormatMessageDay renders the day separator label for the chat thread.
func FormatMessageDay(t time.Time, now time.Time) string {
	today := now.Truncate(24 * time.Hour)
	day := t.Truncate(24 * time.Hour)
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.Add(-24 * time.Hour)):
		return "Yesterday"
	default:
		return t.Format("02/01/2006")
	}
}
