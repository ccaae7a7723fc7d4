// Package display formats human-facing output: the startup banner, sizes,
// and durations.
package display

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatBytes returns a human-readable IEC size (B, KiB, MiB, …).
// Negative sizes are reported as 0 B.
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}

// FormatSeconds renders a whole-second count as "1m05s" style text.
func FormatSeconds(seconds int) string {
	return FormatElapsed(time.Duration(seconds) * time.Second)
}

// FormatElapsed renders d rounded to the second, e.g. "42s" or "1h02m03s".
func FormatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	switch {
	case h > 0:
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm%02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
