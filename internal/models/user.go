package models

import (
	"time"
)

// User is referenced only to scope tasks, categories and attachments.
// Credential and profile management belong to the identity service.
type User struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
