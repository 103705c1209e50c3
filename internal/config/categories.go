package config

import (
	"github.com/timetrack-io/timetrack/internal/models"
)

// LoadCategories loads the category list from dataDir, seeding the default
// set (and persisting it) when the file does not exist yet.
func LoadCategories(dataDir string) (*models.CategoryList, error) {
	path := CategoriesFile(dataDir)

	if !FileExists(path) {
		list := models.DefaultCategories()
		if err := SaveYAML(path, list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var list models.CategoryList
	if err := LoadYAML(path, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// SaveCategories saves the category list to dataDir.
func SaveCategories(dataDir string, list *models.CategoryList) error {
	return SaveYAML(CategoriesFile(dataDir), list)
}
