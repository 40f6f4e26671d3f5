package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docchat-cli",
	Short: "DocChat CLI tool",
	Long: `DocChat CLI is a command-line interface for operating a DocChat deployment.

Available commands:
  uploads list     List the documents stored in an upload directory
  version          Print the CLI version

Use "docchat-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
