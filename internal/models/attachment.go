package models

import (
	"time"
)

// Attachment represents a file stored against a task.
// The binary itself lives in external storage; only the
// metadata row is visible to this service.
type Attachment struct {
	ID        string    `db:"id" json:"id"`
	TaskID    string    `db:"task_id" json:"taskId"`
	Filename  string    `db:"filename" json:"filename"`
	Size      int64     `db:"size" json:"size"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
