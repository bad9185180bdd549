// Package httpapi is the HTTP surface of the statistics service. All
// data endpoints sit behind the identity middleware; /healthz and
// /metrics stay open for probes and scrapers.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/eleven-am/taskhive/internal/logger"
)

// Server wraps the http.Server with its route setup
type Server struct {
	srv *http.Server
}

// NewServer builds the route table and middleware chain
func NewServer(addr string, h *Handler) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.Health)
	mux.Handle("GET /metrics", MetricsHandler())

	authed := func(fn http.HandlerFunc) http.Handler {
		return AuthMiddleware(fn)
	}

	mux.Handle("GET /stats/overview", authed(h.Overview))
	mux.Handle("GET /stats/categories", authed(h.CategoryStats))
	mux.Handle("GET /stats/upcoming", authed(h.UpcomingTasks))
	mux.Handle("GET /stats/overdue", authed(h.OverdueTasks))
	mux.Handle("GET /stats/recent-activity", authed(h.RecentActivity))
	mux.Handle("GET /stats/productivity", authed(h.ProductivityTrend))

	mux.Handle("GET /tasks", authed(h.ListTasks))
	mux.Handle("GET /tasks/{id}", authed(h.GetTask))
	mux.Handle("GET /categories", authed(h.ListCategories))

	handler := RequestIDMiddleware(LoggingMiddleware(MetricsMiddleware(mux)))

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// ListenAndServe starts serving and blocks until shutdown
func (s *Server) ListenAndServe() error {
	logger.HTTP().WithField("addr", s.srv.Addr).Info("listening")
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
