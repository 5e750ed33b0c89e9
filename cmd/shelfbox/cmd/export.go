package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all shelves and items as JSON",
	Long: `Export every shelf and item to a JSON document. With no file
argument the document is written to stdout.

Examples:
  shelfbox export backup.json
  shelfbox export > backup.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		data, err := GetApp().ExportData().Execute(ctx)
		if err != nil {
			return err
		}
		text, err := GetApp().Serializer.Serialize(data)
		if err != nil {
			return fmt.Errorf("failed to serialize export: %w", err)
		}

		if len(args) == 0 {
			fmt.Println(text)
			return nil
		}
		if err := os.WriteFile(args[0], []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", args[0], err)
		}
		fmt.Printf("Exported %d shelves and %d items to %s\n", len(data.Shelves), len(data.Items), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
