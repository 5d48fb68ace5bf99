package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cbt-cli",
	Short: "Computer Based Test portal tooling",
	Long: `cbt-cli inspects the Computer Based Test portal without starting it.

Available commands:
  routes          List the router targets and both navigation sets
  config check    Validate the environment the server would start with
  version         Print the CLI version

Use "cbt-cli [command] --help" for more information about a command.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
