package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eleven-am/taskhive/internal/browse"
	"github.com/eleven-am/taskhive/internal/logger"
	"github.com/eleven-am/taskhive/internal/stats"
	"github.com/eleven-am/taskhive/internal/store"
)

// Handler serves the statistics and browse endpoints
type Handler struct {
	stats  *stats.Service
	browse *browse.Service
	store  *store.Store
}

// NewHandler creates a handler over the services
func NewHandler(statsSvc *stats.Service, browseSvc *browse.Service, st *store.Store) *Handler {
	return &Handler{
		stats:  statsSvc,
		browse: browseSvc,
		store:  st,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleFailure maps store failures to responses. Details stay in the
// log; clients get a generic body.
func (h *Handler) handleFailure(w http.ResponseWriter, r *http.Request, err error) {
	entry := logger.HTTP().WithField("request_id", GetRequestID(r.Context()))

	if errors.Is(err, store.ErrNotFound) {
		entry.WithError(err).Warn("resource not found")
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	entry.WithError(err).Error("request failed")
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// Overview handles GET /stats/overview
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.stats.GetOverview(r.Context(), GetUserID(r.Context()))
	if err != nil {
		h.handleFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

// CategoryStats handles GET /stats/categories
func (h *Handler) CategoryStats(w http.ResponseWriter, r *http.Request) {
	rollups, err := h.stats.GetCategoryStats(r.Context(), GetUserID(r.Context()))
	if err != nil {
		h.handleFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rollups)
}

// UpcomingTasks handles GET /stats/upcoming
func (h *Handler) UpcomingTasks(w http.ResponseWriter, r *http.Request) {
	opts := stats.ParseListOptions(r.URL.Query().Get("limit"))

	tasks, err := h.stats.GetUpcomingTasks(r.Context(), GetUserID(r.Context()), opts)
	if err != nil {
		h.handleFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// OverdueTasks handles GET /stats/overdue
func (h *Handler) OverdueTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.stats.GetOverdueTasks(r.Context(), GetUserID(r.Context()))
	if err != nil {
		h.handleFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// RecentActivity handles GET /stats/recent-activity
func (h *Handler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	opts := stats.ParseListOptions(r.URL.Query().Get("limit"))

	entries, err := h.stats.GetRecentActivity(r.Context(), GetUserID(r.Context()), opts)
	if err != nil {
		h.handleFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// ProductivityTrend handles GET /stats/productivity
func (h *Handler) ProductivityTrend(w http.ResponseWriter, r *http.Request) {
	opts := stats.ParseTrendOptions(r.URL.Query().Get("days"))

	points, err := h.stats.GetProductivityTrend(r.Context(), GetUserID(r.Context()), opts)
	if err != nil {
		h.handleFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

// ListTasks handles GET /tasks
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.TaskFilter{
		Status:     q.Get("status"),
		Priority:   q.Get("priority"),
		CategoryID: q.Get("categoryId"),
		Search:     q.Get("search"),
	}
	opts := browse.ParsePageOptions(q.Get("page"), q.Get("limit"))

	page, err := h.browse.ListTasks(r.Context(), GetUserID(r.Context()), filter, opts)
	if err != nil {
		h.handleFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// GetTask handles GET /tasks/{id}
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.browse.GetTask(r.Context(), GetUserID(r.Context()), r.PathValue("id"))
	if err != nil {
		h.handleFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// ListCategories handles GET /categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.browse.ListCategories(r.Context(), GetUserID(r.Context()))
	if err != nil {
		h.handleFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// Health handles GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
