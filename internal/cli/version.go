package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eleven-am/taskhive/pkg/taskhive"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display Taskhive version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(taskhive.FullVersionInfo())
	},
}
