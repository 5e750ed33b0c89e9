package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shelfbox/internal/application/commands"
	"shelfbox/internal/domain"
)

var launchCmd = &cobra.Command{
	Use:   "launch <item-id>",
	Short: "Open an item with the system default handler",
	Long: `Open an item's target with the system default handler and record the
access time. Files and folders open through the desktop opener; URLs open in
the default browser.

Examples:
  shelfbox launch 3f2504e0-4f89-41d3-9a0c-0305e82c3301`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID, err := domain.ParseItemID(args[0])
		if err != nil {
			return fmt.Errorf("invalid item id: %w", err)
		}

		result, err := GetApp().LaunchItem(itemID).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("Launched %q\n", result.Item.DisplayName())
		if result.PostAction == commands.KeepWindow {
			fmt.Println("Window kept open.")
		}
		return nil
	},
}

var openCmd = &cobra.Command{
	Use:   "open <item-id>",
	Short: "Reveal the folder containing an item's target",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID, err := domain.ParseItemID(args[0])
		if err != nil {
			return fmt.Errorf("invalid item id: %w", err)
		}

		result, err := GetApp().OpenParentFolder(itemID).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("Opened parent folder of %q\n", result.Item.DisplayName())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(openCmd)
}
