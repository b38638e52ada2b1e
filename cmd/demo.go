package cmd

import (
	"github.com/spf13/cobra"

	"jdemo.dev/pkg/jdemo/internal/domain"
)

// newDemoCmd builds the command that runs a single catalog demo.
func newDemoCmd(demo domain.Demo) *cobra.Command {
	return &cobra.Command{
		Use:   demo.Name,
		Short: demo.Title,
		Long:  demo.Title + ": " + demo.Description + ".\n\n" + formatHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := currentFormat()
			if err != nil {
				return err
			}

			return workflow.Run(cmd.Context(), domain.RunArgs{
				Names:  []string{demo.Name},
				Format: format,
			})
		},
	}
}

func init() {
	for _, demo := range domain.Catalog() {
		rootCmd.AddCommand(newDemoCmd(demo))
	}
}
