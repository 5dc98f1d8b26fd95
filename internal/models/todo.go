package models

import (
	"time"
	"unicode/utf8"
)

// TodoItem is a single to-do entry
type TodoItem struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID returns the item ID (used by quiet CLI output)
func (t *TodoItem) GetID() int {
	return t.ID
}

// TitleLength counts characters, not bytes, matching SQLite's length() on TEXT
func TitleLength(title string) int {
	return utf8.RuneCountInString(title)
}

// TodoFilter narrows a listing. A nil Completed returns every item.
type TodoFilter struct {
	Completed *bool
}

// TodoStats summarizes the stored items
type TodoStats struct {
	Total int `json:"total"`
	Open  int `json:"open"`
	Done  int `json:"done"`
}
