package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eleven-am/taskhive/internal/models"
	"github.com/eleven-am/taskhive/internal/store"
)

type stubTaskReader struct {
	totals     map[string]int64
	statuses   map[models.TaskStatus]int64
	priorities map[models.TaskPriority]int64

	upcoming  []models.Task
	overdue   []models.Task
	activity  []store.ActivityEntry
	perDay    []store.DayCount
	err       error
	gotNow    time.Time
	gotSince  time.Time
	gotLimit  uint64
	gotUserID string
}

func (s *stubTaskReader) CountByUser(ctx context.Context, userID string) (int64, error) {
	s.gotUserID = userID
	return s.totals[userID], s.err
}

func (s *stubTaskReader) CountByStatus(ctx context.Context, userID string, status models.TaskStatus) (int64, error) {
	return s.statuses[status], s.err
}

func (s *stubTaskReader) CountByPriority(ctx context.Context, userID string, priority models.TaskPriority) (int64, error) {
	return s.priorities[priority], s.err
}

func (s *stubTaskReader) Upcoming(ctx context.Context, userID string, now time.Time, limit uint64) ([]models.Task, error) {
	s.gotUserID = userID
	s.gotNow = now
	s.gotLimit = limit
	return s.upcoming, s.err
}

func (s *stubTaskReader) Overdue(ctx context.Context, userID string, now time.Time) ([]models.Task, error) {
	s.gotUserID = userID
	s.gotNow = now
	return s.overdue, s.err
}

func (s *stubTaskReader) RecentActivity(ctx context.Context, userID string, limit uint64) ([]store.ActivityEntry, error) {
	s.gotUserID = userID
	s.gotLimit = limit
	return s.activity, s.err
}

func (s *stubTaskReader) CompletedPerDay(ctx context.Context, userID string, since time.Time) ([]store.DayCount, error) {
	s.gotUserID = userID
	s.gotSince = since
	return s.perDay, s.err
}

type stubCategoryReader struct {
	count   int64
	rollups []store.CategoryRollup
	err     error
}

func (s *stubCategoryReader) CountByUser(ctx context.Context, userID string) (int64, error) {
	return s.count, s.err
}

func (s *stubCategoryReader) RollupByUser(ctx context.Context, userID string) ([]store.CategoryRollup, error) {
	return s.rollups, s.err
}

type stubAttachmentReader struct {
	count int64
	size  int64
	err   error
}

func (s *stubAttachmentReader) CountByUser(ctx context.Context, userID string) (int64, error) {
	return s.count, s.err
}

func (s *stubAttachmentReader) TotalSizeByUser(ctx context.Context, userID string) (int64, error) {
	return s.size, s.err
}

func newTestService(tasks *stubTaskReader, categories *stubCategoryReader, attachments *stubAttachmentReader, now time.Time) *Service {
	return &Service{
		tasks:       tasks,
		categories:  categories,
		attachments: attachments,
		now:         func() time.Time { return now },
	}
}

func TestGetOverview(t *testing.T) {
	ctx := context.Background()

	t.Run("sum invariants hold over the breakdowns", func(t *testing.T) {
		tasks := &stubTaskReader{
			totals: map[string]int64{"u1": 9},
			statuses: map[models.TaskStatus]int64{
				models.TaskStatusTodo:       4,
				models.TaskStatusInProgress: 2,
				models.TaskStatusDone:       3,
			},
			priorities: map[models.TaskPriority]int64{
				models.TaskPriorityHigh:   1,
				models.TaskPriorityMedium: 5,
				models.TaskPriorityLow:    3,
			},
		}
		svc := newTestService(tasks, &stubCategoryReader{count: 2}, &stubAttachmentReader{count: 4, size: 3 * 1024 * 1024}, time.Now())

		overview, err := svc.GetOverview(ctx, "u1")
		require.NoError(t, err)

		byStatus := overview.TasksByStatus.Todo + overview.TasksByStatus.InProgress + overview.TasksByStatus.Done
		byPriority := overview.TasksByPriority.High + overview.TasksByPriority.Medium + overview.TasksByPriority.Low
		assert.Equal(t, overview.Overview.TotalTasks, byStatus)
		assert.Equal(t, overview.Overview.TotalTasks, byPriority)

		// 3 done of 9 -> 33%
		assert.Equal(t, int64(33), overview.Overview.CompletionRate)
		assert.Equal(t, int64(2), overview.Overview.TotalCategories)
		assert.Equal(t, int64(4), overview.Overview.TotalAttachments)
		assert.Equal(t, 3.0, overview.Overview.TotalStorageMB)
	})

	t.Run("zero tasks means completion rate zero, not a fault", func(t *testing.T) {
		tasks := &stubTaskReader{
			totals:     map[string]int64{},
			statuses:   map[models.TaskStatus]int64{},
			priorities: map[models.TaskPriority]int64{},
		}
		svc := newTestService(tasks, &stubCategoryReader{}, &stubAttachmentReader{}, time.Now())

		overview, err := svc.GetOverview(ctx, "empty")
		require.NoError(t, err)

		assert.Equal(t, int64(0), overview.Overview.TotalTasks)
		assert.Equal(t, int64(0), overview.Overview.CompletionRate)
		assert.Equal(t, 0.0, overview.Overview.TotalStorageMB)
		assert.Equal(t, StatusBreakdown{}, overview.TasksByStatus)
		assert.Equal(t, PriorityBreakdown{}, overview.TasksByPriority)
	})

	t.Run("completion rate rounds to nearest integer", func(t *testing.T) {
		tasks := &stubTaskReader{
			totals: map[string]int64{"u1": 3},
			statuses: map[models.TaskStatus]int64{
				models.TaskStatusDone: 2,
				models.TaskStatusTodo: 1,
			},
			priorities: map[models.TaskPriority]int64{},
		}
		svc := newTestService(tasks, &stubCategoryReader{}, &stubAttachmentReader{}, time.Now())

		overview, err := svc.GetOverview(ctx, "u1")
		require.NoError(t, err)

		// 2/3 -> 66.66 -> 67
		assert.Equal(t, int64(67), overview.Overview.CompletionRate)
	})

	t.Run("storage rounds to two decimals", func(t *testing.T) {
		tasks := &stubTaskReader{
			totals:     map[string]int64{"u1": 1},
			statuses:   map[models.TaskStatus]int64{models.TaskStatusTodo: 1},
			priorities: map[models.TaskPriority]int64{models.TaskPriorityLow: 1},
		}
		// 1.5 MB + 1 KB = 1.50097... MB -> 1.5
		svc := newTestService(tasks, &stubCategoryReader{}, &stubAttachmentReader{count: 2, size: 1573888}, time.Now())

		overview, err := svc.GetOverview(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 1.5, overview.Overview.TotalStorageMB)
	})

	t.Run("store failures propagate untouched", func(t *testing.T) {
		tasks := &stubTaskReader{err: assert.AnError, totals: map[string]int64{}}
		svc := newTestService(tasks, &stubCategoryReader{}, &stubAttachmentReader{}, time.Now())

		_, err := svc.GetOverview(ctx, "u1")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestGetCategoryStats(t *testing.T) {
	rollups := []store.CategoryRollup{
		{ID: "c1", Name: "Work", TaskCount: 3},
		{ID: "c2", Name: "Home", TaskCount: 0},
	}
	svc := newTestService(&stubTaskReader{}, &stubCategoryReader{rollups: rollups}, &stubAttachmentReader{}, time.Now())

	got, err := svc.GetCategoryStats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, rollups, got)
}

func TestGetUpcomingTasks(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	tasks := &stubTaskReader{upcoming: []models.Task{{ID: "t1"}}}
	svc := newTestService(tasks, &stubCategoryReader{}, &stubAttachmentReader{}, now)

	got, err := svc.GetUpcomingTasks(context.Background(), "u1", ListOptions{Limit: 5})
	require.NoError(t, err)

	assert.Len(t, got, 1)
	assert.Equal(t, "u1", tasks.gotUserID)
	assert.Equal(t, uint64(5), tasks.gotLimit)
	assert.True(t, tasks.gotNow.Equal(now), "window anchor must be the service clock")
}

func TestGetOverdueTasks(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	tasks := &stubTaskReader{overdue: []models.Task{{ID: "t1"}, {ID: "t2"}}}
	svc := newTestService(tasks, &stubCategoryReader{}, &stubAttachmentReader{}, now)

	got, err := svc.GetOverdueTasks(context.Background(), "u1")
	require.NoError(t, err)

	assert.Len(t, got, 2)
	assert.True(t, tasks.gotNow.Equal(now))
}

func TestGetRecentActivity(t *testing.T) {
	entries := []store.ActivityEntry{
		{ID: "t1", Category: &models.CategoryRef{ID: "c1", Name: "Work"}},
		{ID: "t2", Category: nil},
	}
	tasks := &stubTaskReader{activity: entries}
	svc := newTestService(tasks, &stubCategoryReader{}, &stubAttachmentReader{}, time.Now())

	got, err := svc.GetRecentActivity(context.Background(), "u1", ListOptions{Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, entries, got)
	assert.Equal(t, uint64(10), tasks.gotLimit)
}

func TestGetProductivityTrend(t *testing.T) {
	now := time.Date(2025, 1, 4, 15, 30, 0, 0, time.UTC)

	t.Run("sparse series maps day buckets to date strings", func(t *testing.T) {
		tasks := &stubTaskReader{
			perDay: []store.DayCount{
				{Day: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Count: 2},
				{Day: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), Count: 1},
			},
		}
		svc := newTestService(tasks, &stubCategoryReader{}, &stubAttachmentReader{}, now)

		points, err := svc.GetProductivityTrend(context.Background(), "u1", TrendOptions{Days: 7})
		require.NoError(t, err)

		require.Len(t, points, 2)
		assert.Equal(t, TrendPoint{Date: "2025-01-01", CompletedTasks: 2}, points[0])
		assert.Equal(t, TrendPoint{Date: "2025-01-03", CompletedTasks: 1}, points[1])

		wantSince := now.AddDate(0, 0, -7)
		assert.True(t, tasks.gotSince.Equal(wantSince), "window start must trail now by the day count")
	})

	t.Run("no completions yields an empty, non-nil series", func(t *testing.T) {
		tasks := &stubTaskReader{}
		svc := newTestService(tasks, &stubCategoryReader{}, &stubAttachmentReader{}, now)

		points, err := svc.GetProductivityTrend(context.Background(), "u1", TrendOptions{Days: 7})
		require.NoError(t, err)

		assert.NotNil(t, points)
		assert.Empty(t, points)
	})
}
