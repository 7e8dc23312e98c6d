package ui

import (
	"time"

	"github.com/dustin/go-humanize"
)

// RelativeTime describes t relative to now, e.g. "3 minutes ago".
func RelativeTime(t, now time.Time) string {
	if d := now.Sub(t); d >= 0 && d < time.Minute {
		return "just now"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
