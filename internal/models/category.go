package models

// Category is a user-defined grouping for time entries.
type Category struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// CategoryList is the on-disk shape of ~/.timetrack/categories.yaml.
type CategoryList struct {
	Version    int         `yaml:"version"`
	Categories []*Category `yaml:"categories"`
}

// DefaultCategories returns the category set seeded on first run.
func DefaultCategories() *CategoryList {
	return &CategoryList{
		Version: 1,
		Categories: []*Category{
			{ID: "cat-general", Name: "General", Description: "Uncategorized work"},
			{ID: "cat-meetings", Name: "Meetings", Description: "Calls, standups, reviews"},
			{ID: "cat-development", Name: "Development", Description: "Hands-on build work"},
			{ID: "cat-support", Name: "Support", Description: "Interrupts and customer support"},
		},
	}
}
