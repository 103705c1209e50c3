package track

// Window is the active time window filter. Exactly one is active at a time;
// modeling it as a single value makes the filters mutually exclusive by
// construction.
type Window int

const (
	WindowDay Window = iota
	WindowYesterday
	WindowWeek
	WindowMonth
)

// String returns the window's display label.
func (w Window) String() string {
	switch w {
	case WindowDay:
		return "today"
	case WindowYesterday:
		return "yesterday"
	case WindowWeek:
		return "week"
	case WindowMonth:
		return "month"
	}
	return "unknown"
}

// ParseWindow maps a settings value to a Window, defaulting to the day view.
func ParseWindow(s string) Window {
	switch s {
	case "yesterday":
		return WindowYesterday
	case "week":
		return WindowWeek
	case "month":
		return WindowMonth
	}
	return WindowDay
}

// Policy selects which visibility rule Hidden applies.
type Policy int

const (
	// PolicySimple hides only day/week bucketed entries that fall outside
	// the active window. Entries outside both buckets always show.
	PolicySimple Policy = iota

	// PolicyExtended hides completed entries unless requested and hides
	// every saved entry outside the active window. Drafts always show.
	PolicyExtended
)

// ParsePolicy maps a settings value to a Policy, defaulting to extended.
func ParsePolicy(s string) Policy {
	if s == "simple" {
		return PolicySimple
	}
	return PolicyExtended
}

// ViewFilters is the visibility configuration for the entry list.
type ViewFilters struct {
	Window        Window
	ShowCompleted bool
	Policy        Policy
}

// Hidden reports whether the entry is filtered out of the current view.
// It is pure; callers evaluate it at render time.
func Hidden(e *Entry, f ViewFilters) bool {
	switch f.Policy {
	case PolicyExtended:
		if e.Completed && !f.ShowCompleted {
			return true
		}
		if e.IsNew {
			return false
		}
		return !matchesWindow(e, f.Window)
	default:
		// Simple policy only ever hides entries that bucket into the day
		// or week views; anything older stays visible regardless.
		if !e.IsToday && !e.IsThisWeek {
			return false
		}
		if f.Window == WindowDay && e.IsToday {
			return false
		}
		if f.Window == WindowWeek && e.IsThisWeek {
			return false
		}
		return true
	}
}

func matchesWindow(e *Entry, w Window) bool {
	switch w {
	case WindowDay:
		return e.IsToday
	case WindowYesterday:
		return e.IsYesterday
	case WindowWeek:
		return e.IsThisWeek
	case WindowMonth:
		return e.IsThisMonth
	}
	return false
}
