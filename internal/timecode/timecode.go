// Package timecode formats playback positions for the time label.
package timecode

import (
	"fmt"
	"math"
	"time"
)

// Zero is the label shown when nothing has played yet.
const Zero = "00:00:00"

// Format renders a position in seconds as "MM:SS:CC", where CC are
// hundredths of a second. Every field is two digits wide; minutes are not
// capped, so positions past 99 minutes simply widen the first field.
// Negative input is treated as zero.
func Format(t float64) string {
	if t < 0 || math.IsNaN(t) {
		t = 0
	}
	minutes := int(math.Floor(t / 60))
	seconds := int(math.Floor(math.Mod(t, 60)))
	hundredths := int(math.Floor(math.Mod(t, 1) * 100))
	return fmt.Sprintf("%02d:%02d:%02d", minutes, seconds, hundredths)
}

// FormatDuration is Format for a time.Duration.
func FormatDuration(d time.Duration) string {
	return Format(d.Seconds())
}

// Seconds converts a slider value back to a duration.
func Seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
