package browse

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eleven-am/taskhive/internal/store"
)

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewService(store.New(sqlx.NewDb(db, "postgres"))), mock
}

func TestParsePageOptions(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  uint64
		wantLimit uint64
	}{
		{"defaults when empty", "", "", 1, 10},
		{"defaults on garbage", "first", "many", 1, 10},
		{"defaults on non-positive", "0", "-2", 1, 10},
		{"accepts positive values", "3", "20", 3, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := ParsePageOptions(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, opts.Page)
			assert.Equal(t, tt.wantLimit, opts.Limit)
		})
	}
}

func TestListTasks(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tasks WHERE user_id = \$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	mock.ExpectQuery(`SELECT .* FROM tasks WHERE user_id = \$1 ORDER BY created_at DESC LIMIT 10 OFFSET 10`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "category_id", "title", "description",
			"status", "priority", "due_date", "created_at", "updated_at",
		}).AddRow("t11", "u1", nil, "a task", nil, "todo", "medium", nil, now, now))

	page, err := svc.ListTasks(ctx, "u1", store.TaskFilter{}, PageOptions{Page: 2, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, uint64(2), page.Page)
	assert.Equal(t, int64(3), page.TotalPages)
	assert.Len(t, page.Data, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListCategories(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery(`SELECT .* FROM categories WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "name", "description", "color", "created_at",
		}).AddRow("c1", "u1", "Work", nil, "#ff0000", time.Now()))

	categories, err := svc.ListCategories(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, categories, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
