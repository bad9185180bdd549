package store

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/eleven-am/taskhive/internal/models"
)

var categoryColumns = []string{
	"id", "user_id", "name", "description", "color", "created_at",
}

// CategoryStore provides read-only queries over the categories table
type CategoryStore struct {
	db *sqlx.DB
}

// NewCategoryStore creates a category store over the given connection
func NewCategoryStore(db *sqlx.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// CategoryRollup is one category with its assigned-task count
type CategoryRollup struct {
	ID        string  `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Color     *string `db:"color" json:"color"`
	TaskCount int64   `db:"task_count" json:"taskCount"`
}

// CountByUser returns the number of categories owned by the user
func (s *CategoryStore) CountByUser(ctx context.Context, userID string) (int64, error) {
	query, args, err := squirrel.Select("COUNT(*)").
		From("categories").
		PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, wrapError(err, "count", "categories")
	}

	var count int64
	if err := s.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, wrapError(err, "count", "categories")
	}
	return count, nil
}

// ListByUser returns the user's categories, newest first
func (s *CategoryStore) ListByUser(ctx context.Context, userID string) ([]models.Category, error) {
	query, args, err := squirrel.Select(categoryColumns...).
		From("categories").
		PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, wrapError(err, "list", "categories")
	}

	categories := make([]models.Category, 0)
	if err := s.db.SelectContext(ctx, &categories, query, args...); err != nil {
		return nil, wrapError(err, "list", "categories")
	}
	return categories, nil
}

// RollupByUser returns every category of the user with the count of
// tasks assigned to it, zero-task categories included. Uncategorized
// tasks (NULL category_id) never join a row, so they count nowhere.
// Order is creation order with id as tiebreak to keep output stable.
func (s *CategoryStore) RollupByUser(ctx context.Context, userID string) ([]CategoryRollup, error) {
	query, args, err := squirrel.Select(
		"c.id", "c.name", "c.color",
		"COUNT(t.id) AS task_count",
	).
		From("categories c").
		LeftJoin("tasks t ON t.category_id = c.id").
		PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"c.user_id": userID}).
		GroupBy("c.id", "c.name", "c.color", "c.created_at").
		OrderBy("c.created_at ASC", "c.id ASC").
		ToSql()
	if err != nil {
		return nil, wrapError(err, "rollup", "categories")
	}

	rollups := make([]CategoryRollup, 0)
	if err := s.db.SelectContext(ctx, &rollups, query, args...); err != nil {
		return nil, wrapError(err, "rollup", "categories")
	}
	return rollups, nil
}
