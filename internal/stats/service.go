// Package stats computes summarized, time-windowed and grouped views
// over a user's tasks, categories and attachments. Every operation is
// read-only, scoped by the caller-supplied user id, and stateless, so
// unlimited parallel invocation is safe. Multi-query operations run
// without a transaction: counts taken while another service mutates
// rows may skew against each other, which is an accepted trade-off of
// this non-blocking reporting design.
package stats

import (
	"context"
	"math"
	"time"

	"github.com/eleven-am/taskhive/internal/models"
	"github.com/eleven-am/taskhive/internal/store"
)

// TaskReader is the read surface the engine needs over tasks
type TaskReader interface {
	CountByUser(ctx context.Context, userID string) (int64, error)
	CountByStatus(ctx context.Context, userID string, status models.TaskStatus) (int64, error)
	CountByPriority(ctx context.Context, userID string, priority models.TaskPriority) (int64, error)
	Upcoming(ctx context.Context, userID string, now time.Time, limit uint64) ([]models.Task, error)
	Overdue(ctx context.Context, userID string, now time.Time) ([]models.Task, error)
	RecentActivity(ctx context.Context, userID string, limit uint64) ([]store.ActivityEntry, error)
	CompletedPerDay(ctx context.Context, userID string, since time.Time) ([]store.DayCount, error)
}

// CategoryReader is the read surface the engine needs over categories
type CategoryReader interface {
	CountByUser(ctx context.Context, userID string) (int64, error)
	RollupByUser(ctx context.Context, userID string) ([]store.CategoryRollup, error)
}

// AttachmentReader is the read surface the engine needs over attachments
type AttachmentReader interface {
	CountByUser(ctx context.Context, userID string) (int64, error)
	TotalSizeByUser(ctx context.Context, userID string) (int64, error)
}

// Service is the statistics engine
type Service struct {
	tasks       TaskReader
	categories  CategoryReader
	attachments AttachmentReader
	now         func() time.Time
}

// NewService creates a stats service over the store
func NewService(st *store.Store) *Service {
	return &Service{
		tasks:       st.Tasks,
		categories:  st.Categories,
		attachments: st.Attachments,
		now:         time.Now,
	}
}

// OverviewCounts holds the aggregate scalars of the overview snapshot
type OverviewCounts struct {
	TotalTasks       int64   `json:"totalTasks"`
	TotalCategories  int64   `json:"totalCategories"`
	TotalAttachments int64   `json:"totalAttachments"`
	TotalStorageMB   float64 `json:"totalStorageMB"`
	CompletionRate   int64   `json:"completionRate"`
}

// StatusBreakdown counts tasks per workflow state
type StatusBreakdown struct {
	Todo       int64 `json:"todo"`
	InProgress int64 `json:"inProgress"`
	Done       int64 `json:"done"`
}

// PriorityBreakdown counts tasks per priority level
type PriorityBreakdown struct {
	High   int64 `json:"high"`
	Medium int64 `json:"medium"`
	Low    int64 `json:"low"`
}

// Overview is the full overview snapshot
type Overview struct {
	Overview        OverviewCounts    `json:"overview"`
	TasksByStatus   StatusBreakdown   `json:"tasksByStatus"`
	TasksByPriority PriorityBreakdown `json:"tasksByPriority"`
}

// TrendPoint is one day of the productivity trend
type TrendPoint struct {
	Date           string `json:"date"`
	CompletedTasks int64  `json:"completedTasks"`
}

// GetOverview returns the user's overview snapshot: totals, per-status
// and per-priority counts, attachment storage in MB (two decimals) and
// the completion rate as a rounded percentage (0 when there are no
// tasks). Counts are taken with independent queries, so the sum
// invariants hold only absent concurrent mutation.
func (s *Service) GetOverview(ctx context.Context, userID string) (*Overview, error) {
	totalTasks, err := s.tasks.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[models.TaskStatus]int64, len(models.Statuses()))
	for _, status := range models.Statuses() {
		count, err := s.tasks.CountByStatus(ctx, userID, status)
		if err != nil {
			return nil, err
		}
		byStatus[status] = count
	}

	byPriority := make(map[models.TaskPriority]int64, len(models.Priorities()))
	for _, priority := range models.Priorities() {
		count, err := s.tasks.CountByPriority(ctx, userID, priority)
		if err != nil {
			return nil, err
		}
		byPriority[priority] = count
	}

	totalCategories, err := s.categories.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalAttachments, err := s.attachments.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalSize, err := s.attachments.TotalSizeByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	done := byStatus[models.TaskStatusDone]

	var completionRate int64
	if totalTasks > 0 {
		completionRate = int64(math.Round(float64(done) / float64(totalTasks) * 100))
	}

	storageMB := math.Round(float64(totalSize)/(1024*1024)*100) / 100

	return &Overview{
		Overview: OverviewCounts{
			TotalTasks:       totalTasks,
			TotalCategories:  totalCategories,
			TotalAttachments: totalAttachments,
			TotalStorageMB:   storageMB,
			CompletionRate:   completionRate,
		},
		TasksByStatus: StatusBreakdown{
			Todo:       byStatus[models.TaskStatusTodo],
			InProgress: byStatus[models.TaskStatusInProgress],
			Done:       done,
		},
		TasksByPriority: PriorityBreakdown{
			High:   byPriority[models.TaskPriorityHigh],
			Medium: byPriority[models.TaskPriorityMedium],
			Low:    byPriority[models.TaskPriorityLow],
		},
	}, nil
}

// GetCategoryStats returns every category of the user with its task
// count, zero-task categories included, in category creation order.
func (s *Service) GetCategoryStats(ctx context.Context, userID string) ([]store.CategoryRollup, error) {
	return s.categories.RollupByUser(ctx, userID)
}

// GetUpcomingTasks returns the user's not-done tasks due at or after
// the current time, soonest first, truncated to the option limit.
func (s *Service) GetUpcomingTasks(ctx context.Context, userID string, opts ListOptions) ([]models.Task, error) {
	return s.tasks.Upcoming(ctx, userID, s.now(), opts.Limit)
}

// GetOverdueTasks returns all of the user's not-done tasks due before
// the current time, most neglected first. A task due exactly now is
// upcoming, not overdue.
func (s *Service) GetOverdueTasks(ctx context.Context, userID string) ([]models.Task, error) {
	return s.tasks.Overdue(ctx, userID, s.now())
}

// GetRecentActivity returns the user's most recently modified tasks,
// newest first, reduced to the activity projection.
func (s *Service) GetRecentActivity(ctx context.Context, userID string, opts ListOptions) ([]store.ActivityEntry, error) {
	return s.tasks.RecentActivity(ctx, userID, opts.Limit)
}

// GetProductivityTrend returns a sparse per-day series of completed
// task counts over the trailing window. Days with zero completions are
// omitted; callers treat missing dates as zero. The window start and
// the day buckets both use the deployment's local zone so boundary
// days land in one bucket only. updated_at stands in for a completion
// timestamp, so touching a done task moves it to the touch's day.
func (s *Service) GetProductivityTrend(ctx context.Context, userID string, opts TrendOptions) ([]TrendPoint, error) {
	since := s.now().AddDate(0, 0, -opts.Days)

	counts, err := s.tasks.CompletedPerDay(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	points := make([]TrendPoint, 0, len(counts))
	for _, c := range counts {
		points = append(points, TrendPoint{
			Date:           c.Day.Format("2006-01-02"),
			CompletedTasks: c.Count,
		})
	}
	return points, nil
}
