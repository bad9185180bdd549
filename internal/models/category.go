package models

import (
	"time"
)

// Category represents a user-defined grouping for tasks
type Category struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"userId"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	Color       *string   `db:"color" json:"color,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// CategoryRef is the reduced category projection embedded in
// activity entries. A nil *CategoryRef means "uncategorized".
type CategoryRef struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
