package cmd

import (
	"github.com/spf13/cobra"

	"jdemo.dev/pkg/jdemo/internal/domain"
)

// allCmd represents the all command.
var allCmd = newAllCmd()

func newAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all [demos...]",
		Short: "Run several demos in order",
		Long: `Run the named demos (default: every demo) and print their reports in the
order given.

` + formatHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := currentFormat()
			if err != nil {
				return err
			}

			return workflow.Run(cmd.Context(), domain.RunArgs{
				Names:  args,
				Format: format,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(allCmd)
}
