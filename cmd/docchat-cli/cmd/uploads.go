package cmd

import (
	"github.com/spf13/cobra"
)

// uploadsCmd groups the commands that inspect stored uploads.
var uploadsCmd = &cobra.Command{
	Use:   "uploads",
	Short: "Inspect stored uploads",
}

func init() {
	rootCmd.AddCommand(uploadsCmd)
}
