package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/eleven-am/taskhive/internal/logger"
)

// Config holds connection pool settings for the postgres store
type Config struct {
	URL             string
	ConnMaxLifetime time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
}

// NewConfig returns a Config with default pool settings
func NewConfig(url string) *Config {
	return &Config{
		URL:             url,
		ConnMaxLifetime: 10 * time.Minute,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
	}
}

// Connect opens and verifies a database connection
func (cfg *Config) Connect(ctx context.Context) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Store().WithField("max_open_conns", cfg.MaxOpenConns).Info("database connection established")

	return db, nil
}

// Store bundles the read-side repositories over a shared connection pool.
// All repositories are read-only; mutation belongs to other services.
type Store struct {
	db *sqlx.DB

	Tasks       *TaskStore
	Categories  *CategoryStore
	Attachments *AttachmentStore
}

// New creates a Store over an existing connection
func New(db *sqlx.DB) *Store {
	return &Store{
		db:          db,
		Tasks:       NewTaskStore(db),
		Categories:  NewCategoryStore(db),
		Attachments: NewAttachmentStore(db),
	}
}

// Ping verifies the underlying connection is alive
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return wrapError(err, "ping", "")
	}
	return nil
}

// Close releases the connection pool
func (s *Store) Close() error {
	return s.db.Close()
}
