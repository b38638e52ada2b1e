// Package cmd provides the root command and CLI setup for jdemo.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"jdemo.dev/pkg/jdemo/internal/controller"
	"jdemo.dev/pkg/jdemo/internal/domain"
	m "jdemo.dev/pkg/jdemo/internal/model"
)

var ui controller.UI
var browser controller.Browser
var workflow domain.Workflow

// formatFlag is a root-level flag selecting the report format.
var formatFlag string

// verboseFlag switches logging to debug level.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd)
	browser = controller.NewTUI(os.Stdin, os.Stdout)
	workflow = domain.NewWorkflow(ui, browser)
}

const formatHelp = `Output formats (--format):
  - text    the exact console output of each demo
  - table   one table per section
  - yaml    a YAML document of the reports`

const rootLongDescription = `jdemo runs small walkthroughs of primitive numeric conversions and
control flow, printing each step in order.

` + formatHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jdemo",
		Short: "Numeric conversion and control-flow walkthroughs",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&formatFlag, formatFlagName, "f",
			viper.GetString(formatConfigKey),
			"report format: text, table or yaml",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// currentFormat resolves the configured report format.
func currentFormat() (m.Format, error) {
	return m.ParseFormat(viper.GetString(formatConfigKey))
}
