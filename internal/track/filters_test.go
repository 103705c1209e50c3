package track

import "testing"

func TestHiddenSimplePolicy(t *testing.T) {
	tests := []struct {
		name     string
		entry    Entry
		window   Window
		expected bool
	}{
		{
			name:     "today entry visible in day view",
			entry:    Entry{IsToday: true, IsThisWeek: true},
			window:   WindowDay,
			expected: false,
		},
		{
			name:     "week entry hidden in day view",
			entry:    Entry{IsThisWeek: true},
			window:   WindowDay,
			expected: true,
		},
		{
			name:     "week entry visible in week view",
			entry:    Entry{IsThisWeek: true},
			window:   WindowWeek,
			expected: false,
		},
		{
			name:     "today entry visible in week view via week flag",
			entry:    Entry{IsToday: true, IsThisWeek: true},
			window:   WindowWeek,
			expected: false,
		},
		{
			name:     "unbucketed entry always visible",
			entry:    Entry{IsThisMonth: true},
			window:   WindowDay,
			expected: false,
		},
		{
			name:     "completed entry not hidden by simple policy",
			entry:    Entry{Completed: true, IsToday: true, IsThisWeek: true},
			window:   WindowDay,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ViewFilters{Window: tt.window, Policy: PolicySimple}
			e := tt.entry
			if result := Hidden(&e, f); result != tt.expected {
				t.Errorf("Hidden() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestHiddenExtendedPolicy(t *testing.T) {
	tests := []struct {
		name          string
		entry         Entry
		window        Window
		showCompleted bool
		expected      bool
	}{
		{
			name:     "today entry visible in day view",
			entry:    Entry{IsToday: true, IsThisWeek: true, IsThisMonth: true},
			window:   WindowDay,
			expected: false,
		},
		{
			name:     "yesterday entry visible in yesterday view",
			entry:    Entry{IsYesterday: true, IsThisWeek: true, IsThisMonth: true},
			window:   WindowYesterday,
			expected: false,
		},
		{
			name:     "yesterday entry hidden in day view",
			entry:    Entry{IsYesterday: true, IsThisWeek: true, IsThisMonth: true},
			window:   WindowDay,
			expected: true,
		},
		{
			name:     "month entry visible in month view",
			entry:    Entry{IsThisMonth: true},
			window:   WindowMonth,
			expected: false,
		},
		{
			name:     "month entry hidden in week view",
			entry:    Entry{IsThisMonth: true},
			window:   WindowWeek,
			expected: true,
		},
		{
			name:     "completed hidden by default",
			entry:    Entry{Completed: true, IsToday: true, IsThisWeek: true, IsThisMonth: true},
			window:   WindowDay,
			expected: true,
		},
		{
			name:          "completed visible when requested",
			entry:         Entry{Completed: true, IsToday: true, IsThisWeek: true, IsThisMonth: true},
			window:        WindowDay,
			showCompleted: true,
			expected:      false,
		},
		{
			name:     "draft always visible regardless of window",
			entry:    Entry{IsNew: true},
			window:   WindowYesterday,
			expected: false,
		},
		{
			name:     "completed draft still hidden without show completed",
			entry:    Entry{IsNew: true, Completed: true},
			window:   WindowDay,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ViewFilters{
				Window:        tt.window,
				ShowCompleted: tt.showCompleted,
				Policy:        PolicyExtended,
			}
			e := tt.entry
			if result := Hidden(&e, f); result != tt.expected {
				t.Errorf("Hidden() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		input    string
		expected Window
	}{
		{"day", WindowDay},
		{"yesterday", WindowYesterday},
		{"week", WindowWeek},
		{"month", WindowMonth},
		{"", WindowDay},
		{"bogus", WindowDay},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := ParseWindow(tt.input); result != tt.expected {
				t.Errorf("ParseWindow(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	if ParsePolicy("simple") != PolicySimple {
		t.Error("ParsePolicy(simple) should be PolicySimple")
	}
	if ParsePolicy("extended") != PolicyExtended {
		t.Error("ParsePolicy(extended) should be PolicyExtended")
	}
	if ParsePolicy("") != PolicyExtended {
		t.Error("ParsePolicy empty should default to PolicyExtended")
	}
}
