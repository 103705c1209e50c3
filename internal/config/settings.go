package config

import (
	"github.com/timetrack-io/timetrack/internal/models"
)

// LoadSettings loads the global settings from ~/.timetrack/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewSettings)
}

// SaveSettings saves the global settings to ~/.timetrack/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}
