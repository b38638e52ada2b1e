package cmd

import (
	"github.com/spf13/cobra"

	"jdemo.dev/pkg/jdemo/internal/domain"
)

var convertFromFlag string
var convertToFlag string

// convertCmd represents the convert command.
var convertCmd = newConvertCmd()

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert --from KIND --to KIND VALUE",
		Short: "Cast a single value between primitive kinds",
		Long: `Cast VALUE from one primitive kind to another and print the result.

Kinds: int, long, float, double, byte, char, short. Char values are given
as their numeric code. Pass negative values after "--", e.g.
  jdemo convert --from int --to byte -- -129`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := currentFormat()
			if err != nil {
				return err
			}

			return workflow.Convert(cmd.Context(), domain.ConvertArgs{
				From:   convertFromFlag,
				To:     convertToFlag,
				Value:  args[0],
				Format: format,
			})
		},
	}

	configureConvertFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func configureConvertFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&convertFromFlag, fromFlagName, "", "kind of the input value")
	cmd.Flags().StringVar(&convertToFlag, toFlagName, "", "kind to cast the value to")
	cobra.CheckErr(cmd.MarkFlagRequired(fromFlagName))
	cobra.CheckErr(cmd.MarkFlagRequired(toFlagName))
}
