package duration

import (
	"fmt"
	"time"
)

// Humanize renders a duration relative to now: positive is in the future
// ("in 2 days" style), negative is in the past ("14 days ago"). Output is
// deliberately coarse - this decorates expiry dates, it doesn't measure.
func Humanize(d time.Duration) string {
	past := d < 0
	if past {
		d = -d
	}

	describe := func(n int64, unit string) string {
		text := fmt.Sprintf("%d %s", n, unit)
		if n != 1 {
			text += "s"
		}

		if past {
			return text + " ago"
		}

		return "in " + text
	}

	const day = 24 * time.Hour

	switch {
	case d >= 365*day:
		return describe(int64(d/(365*day)), "year")
	case d >= day:
		return describe(int64(d/day), "day")
	case d >= time.Hour:
		return describe(int64(d/time.Hour), "hour")
	case d >= time.Minute:
		return describe(int64(d/time.Minute), "minute")
	default:
		return describe(int64(d/time.Second), "second")
	}
}
