package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"jdemo.dev/pkg/jdemo/internal/controller"
)

// isInteractive reports whether the browser can take over the terminal.
var isInteractive = func() bool {
	return controller.IsTTY(os.Stdin) && controller.IsTTY(os.Stdout)
}

// browseCmd represents the browse command.
var browseCmd = newBrowseCmd()

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the demos interactively",
		Long: `Open an interactive list of demos; enter shows a report, esc goes back
and q quits. Without a terminal the demo list is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isInteractive() {
				slog.Debug("No terminal attached, listing demos instead of browsing")
				return workflow.List(cmd.Context())
			}

			return workflow.Browse(cmd.Context())
		},
	}
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
