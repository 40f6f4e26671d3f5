package cmd

import (
	"fmt"
	"os"

	"github.com/nfrund/docchat/cmd/docchat-cli/internal/inventory"
	"github.com/nfrund/docchat/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	listDir          string
	listOwnerFilter  string
	listOutputFormat string
)

// uploadsListCmd represents the uploads list command
var uploadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored uploads",
	Long: `List the documents stored by the disk storage backend.

The directory defaults to STORAGE_DIR (or "data" when unset).

Examples:
  docchat-cli uploads list                      # All uploads in table format
  docchat-cli uploads list --owner m@example.com
  docchat-cli uploads list --dir /var/lib/docchat --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := listDir
		if dir == "" {
			dir = os.Getenv("STORAGE_DIR")
		}
		if dir == "" {
			dir = config.DefaultStorageDir
		}

		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("storage directory %q: %w", dir, err)
		}

		fs := afero.NewBasePathFs(afero.NewOsFs(), dir)
		return runUploadsList(cmd, fs)
	},
}

func runUploadsList(cmd *cobra.Command, fs afero.Fs) error {
	entries, err := inventory.Scan(fs)
	if err != nil {
		return err
	}
	if listOwnerFilter != "" {
		entries = inventory.FilterOwner(entries, listOwnerFilter)
	}

	switch listOutputFormat {
	case "table":
		return inventory.WriteTable(cmd.OutOrStdout(), entries)
	case "json":
		return inventory.WriteJSON(cmd.OutOrStdout(), entries)
	default:
		return fmt.Errorf("invalid format %q: valid formats are table, json", listOutputFormat)
	}
}

func init() {
	uploadsCmd.AddCommand(uploadsListCmd)

	uploadsListCmd.Flags().StringVar(&listDir, "dir", "", "Storage directory to inspect")
	uploadsListCmd.Flags().StringVarP(&listOwnerFilter, "owner", "o", "", "Only list uploads of this owner")
	uploadsListCmd.Flags().StringVarP(&listOutputFormat, "format", "f", "table", "Output format (table, json)")
}
