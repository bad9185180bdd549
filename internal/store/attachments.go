package store

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// AttachmentStore provides read-only queries over the attachments table.
// Attachment rows are reached through their owning task; the store
// never touches the stored binaries.
type AttachmentStore struct {
	db *sqlx.DB
}

// NewAttachmentStore creates an attachment store over the given connection
func NewAttachmentStore(db *sqlx.DB) *AttachmentStore {
	return &AttachmentStore{db: db}
}

// CountByUser returns the number of attachments across all of the
// user's tasks
func (s *AttachmentStore) CountByUser(ctx context.Context, userID string) (int64, error) {
	query, args, err := squirrel.Select("COUNT(*)").
		From("attachments a").
		InnerJoin("tasks t ON t.id = a.task_id").
		PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"t.user_id": userID}).
		ToSql()
	if err != nil {
		return 0, wrapError(err, "count", "attachments")
	}

	var count int64
	if err := s.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, wrapError(err, "count", "attachments")
	}
	return count, nil
}

// TotalSizeByUser returns the summed byte size of all attachments
// across the user's tasks, 0 when there are none
func (s *AttachmentStore) TotalSizeByUser(ctx context.Context, userID string) (int64, error) {
	query, args, err := squirrel.Select("COALESCE(SUM(a.size), 0)").
		From("attachments a").
		InnerJoin("tasks t ON t.id = a.task_id").
		PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"t.user_id": userID}).
		ToSql()
	if err != nil {
		return 0, wrapError(err, "sum", "attachments")
	}

	var total int64
	if err := s.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, wrapError(err, "sum", "attachments")
	}
	return total, nil
}
