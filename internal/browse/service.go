// Package browse exposes the read-only listing surface over tasks and
// categories. Like the stats engine it never mutates rows; create,
// update and delete belong to the task service proper.
package browse

import (
	"context"
	"math"
	"strconv"

	"github.com/eleven-am/taskhive/internal/models"
	"github.com/eleven-am/taskhive/internal/store"
)

// Defaults applied when pagination parameters are missing or malformed
const (
	DefaultPage  uint64 = 1
	DefaultLimit uint64 = 10
)

// PageOptions selects one page of a listing
type PageOptions struct {
	Page  uint64
	Limit uint64
}

// ParsePageOptions builds PageOptions from raw query-string values.
// Malformed or non-positive values silently fall back to the defaults.
func ParsePageOptions(rawPage, rawLimit string) PageOptions {
	opts := PageOptions{Page: DefaultPage, Limit: DefaultLimit}
	if n, err := strconv.Atoi(rawPage); err == nil && n > 0 {
		opts.Page = uint64(n)
	}
	if n, err := strconv.Atoi(rawLimit); err == nil && n > 0 {
		opts.Limit = uint64(n)
	}
	return opts
}

// TaskPage is one page of a task listing
type TaskPage struct {
	Data       []models.Task `json:"data"`
	Total      int64         `json:"total"`
	Page       uint64        `json:"page"`
	TotalPages int64         `json:"totalPages"`
}

// Service serves the read-only browse operations
type Service struct {
	tasks      *store.TaskStore
	categories *store.CategoryStore
}

// NewService creates a browse service over the store
func NewService(st *store.Store) *Service {
	return &Service{
		tasks:      st.Tasks,
		categories: st.Categories,
	}
}

// ListTasks returns one page of the user's tasks, newest first
func (s *Service) ListTasks(ctx context.Context, userID string, filter store.TaskFilter, opts PageOptions) (*TaskPage, error) {
	offset := (opts.Page - 1) * opts.Limit

	tasks, total, err := s.tasks.List(ctx, userID, filter, offset, opts.Limit)
	if err != nil {
		return nil, err
	}

	return &TaskPage{
		Data:       tasks,
		Total:      total,
		Page:       opts.Page,
		TotalPages: int64(math.Ceil(float64(total) / float64(opts.Limit))),
	}, nil
}

// GetTask returns a single task owned by the user
func (s *Service) GetTask(ctx context.Context, userID, taskID string) (*models.Task, error) {
	return s.tasks.GetByID(ctx, userID, taskID)
}

// ListCategories returns the user's categories, newest first
func (s *Service) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	return s.categories.ListByUser(ctx, userID)
}
