package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importReplace bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import shelves and items from a JSON export",
	Long: `Import shelves and items from a JSON document produced by export.
By default existing data is kept and imported records are merged in;
--replace wipes all shelves and items first.

Examples:
  shelfbox import backup.json
  shelfbox import --replace backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		data, err := GetApp().Serializer.Deserialize(string(raw))
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}

		result, err := GetApp().ImportData(data, importReplace).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "delete existing data before importing")
	rootCmd.AddCommand(importCmd)
}
