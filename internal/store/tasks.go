package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/eleven-am/taskhive/internal/models"
)

var taskColumns = []string{
	"id", "user_id", "category_id", "title", "description",
	"status", "priority", "due_date", "created_at", "updated_at",
}

// TaskStore provides read-only queries over the tasks table
type TaskStore struct {
	db *sqlx.DB
}

// NewTaskStore creates a task store over the given connection
func NewTaskStore(db *sqlx.DB) *TaskStore {
	return &TaskStore{db: db}
}

// TaskFilter narrows task listings. Zero-value fields are ignored.
type TaskFilter struct {
	Status     string
	Priority   string
	CategoryID string
	Search     string
}

// DayCount is one bucket of a per-day aggregation
type DayCount struct {
	Day   time.Time `db:"day"`
	Count int64     `db:"count"`
}

// ActivityEntry is the reduced projection returned by RecentActivity.
// Category is nil when the task is uncategorized.
type ActivityEntry struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	Status    models.TaskStatus   `json:"status"`
	Priority  models.TaskPriority `json:"priority"`
	Category  *models.CategoryRef `json:"category"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

func (s *TaskStore) countWhere(ctx context.Context, conds ...squirrel.Sqlizer) (int64, error) {
	builder := squirrel.Select("COUNT(*)").
		From("tasks").
		PlaceholderFormat(squirrel.Dollar)
	for _, cond := range conds {
		builder = builder.Where(cond)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, wrapError(err, "count", "tasks")
	}

	var count int64
	if err := s.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, wrapError(err, "count", "tasks")
	}
	return count, nil
}

// CountByUser returns the total number of tasks owned by the user
func (s *TaskStore) CountByUser(ctx context.Context, userID string) (int64, error) {
	return s.countWhere(ctx, squirrel.Eq{"user_id": userID})
}

// CountByStatus returns the number of the user's tasks in the given status
func (s *TaskStore) CountByStatus(ctx context.Context, userID string, status models.TaskStatus) (int64, error) {
	return s.countWhere(ctx, squirrel.Eq{"user_id": userID, "status": status})
}

// CountByPriority returns the number of the user's tasks with the given priority
func (s *TaskStore) CountByPriority(ctx context.Context, userID string, priority models.TaskPriority) (int64, error) {
	return s.countWhere(ctx, squirrel.Eq{"user_id": userID, "priority": priority})
}

// Upcoming returns the user's not-done tasks due at or after now,
// soonest first, truncated to limit. A task due exactly at now counts
// as upcoming, not overdue.
func (s *TaskStore) Upcoming(ctx context.Context, userID string, now time.Time, limit uint64) ([]models.Task, error) {
	query, args, err := squirrel.Select(taskColumns...).
		From("tasks").
		PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.NotEq{"status": models.TaskStatusDone}).
		Where("due_date IS NOT NULL").
		Where(squirrel.GtOrEq{"due_date": now}).
		OrderBy("due_date ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, wrapError(err, "upcoming", "tasks")
	}

	tasks := make([]models.Task, 0)
	if err := s.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, wrapError(err, "upcoming", "tasks")
	}
	return tasks, nil
}

// Overdue returns all of the user's not-done tasks due strictly before
// now, oldest due date first.
func (s *TaskStore) Overdue(ctx context.Context, userID string, now time.Time) ([]models.Task, error) {
	query, args, err := squirrel.Select(taskColumns...).
		From("tasks").
		PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.NotEq{"status": models.TaskStatusDone}).
		Where("due_date IS NOT NULL").
		Where(squirrel.Lt{"due_date": now}).
		OrderBy("due_date ASC").
		ToSql()
	if err != nil {
		return nil, wrapError(err, "overdue", "tasks")
	}

	tasks := make([]models.Task, 0)
	if err := s.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, wrapError(err, "overdue", "tasks")
	}
	return tasks, nil
}

type activityRow struct {
	ID           string              `db:"id"`
	Title        string              `db:"title"`
	Status       models.TaskStatus   `db:"status"`
	Priority     models.TaskPriority `db:"priority"`
	UpdatedAt    time.Time           `db:"updated_at"`
	CategoryID   sql.NullString      `db:"category_id"`
	CategoryName sql.NullString      `db:"category_name"`
}

// RecentActivity returns the user's most recently modified tasks,
// newest first, projected down to the activity shape.
func (s *TaskStore) RecentActivity(ctx context.Context, userID string, limit uint64) ([]ActivityEntry, error) {
	query, args, err := squirrel.Select(
		"t.id", "t.title", "t.status", "t.priority", "t.updated_at",
		"c.id AS category_id", "c.name AS category_name",
	).
		From("tasks t").
		LeftJoin("categories c ON c.id = t.category_id").
		PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"t.user_id": userID}).
		OrderBy("t.updated_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, wrapError(err, "recent_activity", "tasks")
	}

	var rows []activityRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapError(err, "recent_activity", "tasks")
	}

	entries := make([]ActivityEntry, 0, len(rows))
	for _, row := range rows {
		entry := ActivityEntry{
			ID:        row.ID,
			Title:     row.Title,
			Status:    row.Status,
			Priority:  row.Priority,
			UpdatedAt: row.UpdatedAt,
		}
		if row.CategoryID.Valid {
			entry.Category = &models.CategoryRef{
				ID:   row.CategoryID.String,
				Name: row.CategoryName.String,
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// CompletedPerDay groups the user's done tasks modified at or after
// since by calendar day. Days without completions produce no row.
// updated_at stands in for a completion timestamp; editing a done task
// moves it to the edit's day.
func (s *TaskStore) CompletedPerDay(ctx context.Context, userID string, since time.Time) ([]DayCount, error) {
	query, args, err := squirrel.Select(
		"DATE(updated_at) AS day",
		"COUNT(*) AS count",
	).
		From("tasks").
		PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"user_id": userID, "status": models.TaskStatusDone}).
		Where(squirrel.GtOrEq{"updated_at": since}).
		GroupBy("DATE(updated_at)").
		OrderBy("day ASC").
		ToSql()
	if err != nil {
		return nil, wrapError(err, "completed_per_day", "tasks")
	}

	counts := make([]DayCount, 0)
	if err := s.db.SelectContext(ctx, &counts, query, args...); err != nil {
		return nil, wrapError(err, "completed_per_day", "tasks")
	}
	return counts, nil
}

// GetByID returns a single task owned by the user, or ErrNotFound
func (s *TaskStore) GetByID(ctx context.Context, userID, taskID string) (*models.Task, error) {
	query, args, err := squirrel.Select(taskColumns...).
		From("tasks").
		PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"id": taskID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, wrapError(err, "get", "tasks")
	}

	var task models.Task
	if err := s.db.GetContext(ctx, &task, query, args...); err != nil {
		return nil, wrapError(err, "get", "tasks")
	}
	return &task, nil
}

// List returns a page of the user's tasks, newest first, with the
// total row count for the filter. Search matches title or description
// case-insensitively.
func (s *TaskStore) List(ctx context.Context, userID string, filter TaskFilter, offset, limit uint64) ([]models.Task, int64, error) {
	conds := []squirrel.Sqlizer{squirrel.Eq{"user_id": userID}}
	if filter.Status != "" {
		conds = append(conds, squirrel.Eq{"status": filter.Status})
	}
	if filter.Priority != "" {
		conds = append(conds, squirrel.Eq{"priority": filter.Priority})
	}
	if filter.CategoryID != "" {
		conds = append(conds, squirrel.Eq{"category_id": filter.CategoryID})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conds = append(conds, squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	total, err := s.countWhere(ctx, conds...)
	if err != nil {
		return nil, 0, err
	}

	builder := squirrel.Select(taskColumns...).
		From("tasks").
		PlaceholderFormat(squirrel.Dollar)
	for _, cond := range conds {
		builder = builder.Where(cond)
	}
	query, args, err := builder.
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, 0, wrapError(err, "list", "tasks")
	}

	tasks := make([]models.Task, 0)
	if err := s.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, 0, wrapError(err, "list", "tasks")
	}
	return tasks, total, nil
}
