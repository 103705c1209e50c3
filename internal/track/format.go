// Package track implements the client-side view state for time entries: the
// ordered entry collection, its mutation protocol against the daemon, window
// bucketing, visibility filtering and the elapsed-time tick.
package track

import "fmt"

const (
	millisPerSecond int64 = 1000
	millisPerMinute       = 60 * millisPerSecond
	millisPerHour         = 60 * millisPerMinute
	millisPerDay          = 24 * millisPerHour

	// AdjustStepMillis is the smallest manual time adjustment, five minutes.
	AdjustStepMillis = 5 * millisPerMinute
)

// FormatMilliseconds renders a duration as HH:MM:SS, hours wrapping at 24.
// Negative input runs through the same decomposition and surfaces its sign in
// the output; the daemon clamps durations at zero so that never happens in
// practice.
func FormatMilliseconds(ms int64) string {
	hours := (ms % millisPerDay) / millisPerHour
	minutes := (ms % millisPerHour) / millisPerMinute
	seconds := (ms % millisPerMinute) / millisPerSecond
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
