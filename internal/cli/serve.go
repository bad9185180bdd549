package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eleven-am/taskhive/internal/browse"
	"github.com/eleven-am/taskhive/internal/httpapi"
	"github.com/eleven-am/taskhive/internal/logger"
	"github.com/eleven-am/taskhive/internal/stats"
	"github.com/eleven-am/taskhive/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the statistics HTTP server",
	Long: `Connect to the task database and serve the statistics and browse
endpoints until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	if config.Database.URL == "" {
		return fmt.Errorf("no database URL configured (set database.url, DATABASE_URL or --url)")
	}

	logger.SetLevel(config.Log.Level)
	log := logger.CLI()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	dbCfg := store.NewConfig(config.Database.URL)
	dbCfg.MaxOpenConns = config.Database.MaxConnections

	db, err := dbCfg.Connect(connectCtx)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	st := store.New(db)
	defer st.Close()

	handler := httpapi.NewHandler(stats.NewService(st), browse.NewService(st), st)
	server := httpapi.NewServer(config.Server.Addr, handler)

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		log.WithField("signal", sig.String()).Info("shutting down")
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	log.Info("server stopped")
	return nil
}
