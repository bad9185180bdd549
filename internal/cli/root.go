package cli

import (
	"github.com/spf13/cobra"

	"github.com/eleven-am/taskhive/pkg/taskhive"
)

// Global configuration variables
var (
	configFile  string
	config      *Config
	databaseURL string
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taskhive",
		Short: "Taskhive - Task statistics and reporting service",
		Long: `Taskhive serves summarized, time-windowed and grouped views over a
user's tasks, categories and attachments: overview counters, category
rollups, upcoming and overdue task lists, a recent-activity feed and a
per-day productivity trend.

The service is strictly read-only over its database; task mutation,
identity and file storage belong to neighbouring services.`,
		Version: taskhive.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			config, err = LoadConfig(configFile)
			if err != nil {
				return err
			}

			if databaseURL != "" {
				config.Database.URL = databaseURL
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: taskhive.yaml)")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "url", "", "database connection URL")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
