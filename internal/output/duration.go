package output

import (
	"fmt"
	"time"
)

// FormatDuration renders an age compactly for a fixed-width column:
// seconds under a minute, minutes+seconds under an hour, hours+minutes
// under a day, days+hours beyond that. Negative inputs (clock skew
// between stat time and render time) clamp to zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int64(d.Seconds())
	switch {
	case s < 60:
		return fmt.Sprintf("%ds", s)
	case s < 3600:
		return fmt.Sprintf("%dm%02ds", s/60, s%60)
	case s < 86400:
		return fmt.Sprintf("%dh%02dm", s/3600, (s%3600)/60)
	default:
		return fmt.Sprintf("%dd%02dh", s/86400, (s%86400)/3600)
	}
}
