package models

import "time"

// ViewConfig holds defaults for the TUI view state.
type ViewConfig struct {
	DefaultFilter string `yaml:"default_filter"` // "day" | "yesterday" | "week" | "month"
	ShowCompleted bool   `yaml:"show_completed"`
	FilterPolicy  string `yaml:"filter_policy"` // "simple" | "extended"
}

// LinkingConfig controls automatic record linking after entry creation.
type LinkingConfig struct {
	AssociatedRecordID string   `yaml:"associated_record_id,omitempty"`
	LinkablePrefixes   []string `yaml:"linkable_prefixes"`
}

// UpdatesConfig controls the daemon's startup update check.
type UpdatesConfig struct {
	CheckOnStartup bool       `yaml:"check_on_startup"`
	CheckFrequency string     `yaml:"check_frequency"` // "every_launch" | "daily" | "weekly"
	LastChecked    *time.Time `yaml:"last_checked,omitempty"`
}

// Settings represents global application settings.
// This corresponds to ~/.timetrack/settings.yaml.
type Settings struct {
	Version               int           `yaml:"version"`
	SingleTaskOnlyRunning bool          `yaml:"single_task_only_running"`
	View                  ViewConfig    `yaml:"view"`
	Linking               LinkingConfig `yaml:"linking"`
	Updates               UpdatesConfig `yaml:"updates"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:               1,
		SingleTaskOnlyRunning: true,
		View: ViewConfig{
			DefaultFilter: "day",
			ShowCompleted: false,
			FilterPolicy:  "extended",
		},
		Linking: LinkingConfig{
			LinkablePrefixes: []string{"job-", "case-", "proj-"},
		},
		Updates: UpdatesConfig{
			CheckOnStartup: true,
			CheckFrequency: "daily",
		},
	}
}
