package track

import "time"

// Calendar predicates for bucketing an entry's timestamp against "now".
// They are pure and evaluated on every render pass, so a session that lives
// across midnight reclassifies entries on its own.
//
// Timestamps are Unix epoch milliseconds; zero means absent and never
// matches.

// IsToday reports whether the timestamp falls on the current calendar day.
func IsToday(epochMs int64, now time.Time) bool {
	if epochMs == 0 {
		return false
	}
	return sameDay(time.UnixMilli(epochMs).In(now.Location()), now)
}

// IsYesterday reports whether the timestamp falls on the previous calendar day.
func IsYesterday(epochMs int64, now time.Time) bool {
	if epochMs == 0 {
		return false
	}
	return sameDay(time.UnixMilli(epochMs).In(now.Location()), now.AddDate(0, 0, -1))
}

// IsThisWeek reports whether the timestamp falls in the current week.
// Weeks start on Monday.
func IsThisWeek(epochMs int64, now time.Time) bool {
	if epochMs == 0 {
		return false
	}
	t := time.UnixMilli(epochMs).In(now.Location())

	// Sunday is weekday 0; shift it to offset 6 so Monday is the week start.
	offset := (int(now.Weekday()) + 6) % 7
	startOfWeek := startOfDay(now).AddDate(0, 0, -offset)
	startOfNextWeek := startOfWeek.AddDate(0, 0, 7)

	return !t.Before(startOfWeek) && t.Before(startOfNextWeek)
}

// IsThisMonth reports whether the timestamp falls in the current calendar month.
func IsThisMonth(epochMs int64, now time.Time) bool {
	if epochMs == 0 {
		return false
	}
	t := time.UnixMilli(epochMs).In(now.Location())
	return t.Month() == now.Month() && t.Year() == now.Year()
}

func sameDay(a, b time.Time) bool {
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
