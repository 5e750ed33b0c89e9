package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shelfbox/internal/adapters/system"
	"shelfbox/internal/domain"
)

var copyCmd = &cobra.Command{
	Use:   "copy <item-id>",
	Short: "Copy an item's target path or URL to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID, err := domain.ParseItemID(args[0])
		if err != nil {
			return fmt.Errorf("invalid item id: %w", err)
		}

		item, err := GetApp().Items.GetByID(context.Background(), itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("item %s not found", itemID)
		}

		if err := system.NewClipboard().Write(item.Target()); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Printf("Copied %q\n", item.Target())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
