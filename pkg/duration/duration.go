// Package duration provides ISO-8601 duration formatting utilities.
//
// This package converts Go time.Duration values into the ISO-8601 duration
// strings used by experience records ("P1DT2H3M4.5S") and validates strings
// already in that form. Formatting is capped at millisecond precision; finer
// fractions are truncated.
//
// Zero Value Semantics:
//   - A zero duration formats as "PT0S"
//   - Negative durations are treated as zero; experience durations never
//     run backwards
//
// Usage Examples:
//
//	// Format elapsed time
//	s := duration.Format(90 * time.Second) // "PT1M30S"
//
//	// Validate an ISO-8601 duration string
//	ok := duration.IsValid("P1DT12H36M0.25S") // true
package duration

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// iso8601Pattern accepts the designator grammar. "P" alone and a trailing
// bare "T" slip through the pattern and are rejected separately.
var iso8601Pattern = regexp.MustCompile(`^P(\d+Y)?(\d+M)?(\d+W)?(\d+D)?(T(\d+H)?(\d+M)?(\d+(\.\d+)?S)?)?$`)

// Format renders d as an ISO-8601 duration string at millisecond precision.
// Components that are zero are omitted, so 90 seconds formats as "PT1M30S"
// rather than "P0DT0H1M30S". Zero and negative durations format as "PT0S".
func Format(d time.Duration) string {
	if d <= 0 {
		return "PT0S"
	}
	d = d.Truncate(time.Millisecond)
	if d == 0 {
		return "PT0S"
	}

	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	millis := (d - seconds*time.Second) / time.Millisecond

	var b strings.Builder
	b.WriteByte('P')
	if days > 0 {
		fmt.Fprintf(&b, "%dD", days)
	}
	if hours > 0 || minutes > 0 || seconds > 0 || millis > 0 {
		b.WriteByte('T')
		if hours > 0 {
			fmt.Fprintf(&b, "%dH", hours)
		}
		if minutes > 0 {
			fmt.Fprintf(&b, "%dM", minutes)
		}
		if seconds > 0 || millis > 0 {
			if millis > 0 {
				frac := strings.TrimRight(fmt.Sprintf("%03d", millis), "0")
				fmt.Fprintf(&b, "%d.%sS", seconds, frac)
			} else {
				fmt.Fprintf(&b, "%dS", seconds)
			}
		}
	}
	return b.String()
}

// IsValid reports whether s is a well-formed ISO-8601 duration string.
// At least one designator must follow "P", and a "T" separator must be
// followed by at least one time component.
func IsValid(s string) bool {
	if s == "P" || strings.HasSuffix(s, "T") {
		return false
	}
	return iso8601Pattern.MatchString(s)
}
