package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shelfbox/internal/domain"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage items on shelves",
	Long: `Add, rename, annotate, move, reorder, and remove launchable items.

Examples:
  shelfbox item add <shelf-id> file /home/me/notes.txt "Notes"
  shelfbox item add <shelf-id> url https://example.com "Example" --memo "docs"
  shelfbox item move <item-id> <shelf-id>
  shelfbox item rm <item-id>`,
}

var itemAddMemo string

var itemAddCmd = &cobra.Command{
	Use:   "add <shelf-id> <type> <target> <display-name>",
	Short: "Add an item to a shelf (type: file, folder, or url)",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		shelfID, err := domain.ParseShelfID(args[0])
		if err != nil {
			return fmt.Errorf("invalid shelf id: %w", err)
		}
		itemType, err := domain.ParseItemType(args[1])
		if err != nil {
			return err
		}
		var memo *string
		if itemAddMemo != "" {
			memo = &itemAddMemo
		}

		result, err := GetApp().AddItem(shelfID, itemType, args[2], args[3], memo).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n", result.Message, result.Item.ID())
		return nil
	},
}

var itemRemoveCmd = &cobra.Command{
	Use:     "rm <item-id>",
	Aliases: []string{"remove"},
	Short:   "Remove an item",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID, err := domain.ParseItemID(args[0])
		if err != nil {
			return fmt.Errorf("invalid item id: %w", err)
		}

		result, err := GetApp().RemoveItem(itemID).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var itemRenameCmd = &cobra.Command{
	Use:   "rename <item-id> <new-name>",
	Short: "Rename an item's display name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID, err := domain.ParseItemID(args[0])
		if err != nil {
			return fmt.Errorf("invalid item id: %w", err)
		}

		result, err := GetApp().RenameItem(itemID, args[1]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var itemMemoClear bool

var itemMemoCmd = &cobra.Command{
	Use:   "memo <item-id> [text]",
	Short: "Set or clear an item's memo",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID, err := domain.ParseItemID(args[0])
		if err != nil {
			return fmt.Errorf("invalid item id: %w", err)
		}
		var memo *string
		if len(args) == 2 && !itemMemoClear {
			memo = &args[1]
		}

		result, err := GetApp().UpdateMemo(itemID, memo).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var itemMoveCmd = &cobra.Command{
	Use:   "move <item-id> <shelf-id>",
	Short: "Move an item to another shelf",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID, err := domain.ParseItemID(args[0])
		if err != nil {
			return fmt.Errorf("invalid item id: %w", err)
		}
		shelfID, err := domain.ParseShelfID(args[1])
		if err != nil {
			return fmt.Errorf("invalid shelf id: %w", err)
		}

		result, err := GetApp().MoveItem(itemID, shelfID).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var itemReorderCmd = &cobra.Command{
	Use:   "reorder <item-id>...",
	Short: "Assign display order to items in the given sequence",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]domain.ItemID, 0, len(args))
		for _, arg := range args {
			id, err := domain.ParseItemID(arg)
			if err != nil {
				return fmt.Errorf("invalid item id %q: %w", arg, err)
			}
			ids = append(ids, id)
		}

		result, err := GetApp().ReorderItems(ids).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var itemListCmd = &cobra.Command{
	Use:   "list <shelf-id>",
	Short: "List the items on a shelf",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shelfID, err := domain.ParseShelfID(args[0])
		if err != nil {
			return fmt.Errorf("invalid shelf id: %w", err)
		}

		items, err := GetApp().ListItems(shelfID).Execute(context.Background())
		if err != nil {
			return err
		}
		for _, it := range items {
			fmt.Printf("%s  [%s]  %s  %s\n", it.ID(), it.Type(), it.DisplayName(), it.Target())
		}
		return nil
	},
}

func init() {
	itemAddCmd.Flags().StringVar(&itemAddMemo, "memo", "", "optional memo text")
	itemMemoCmd.Flags().BoolVar(&itemMemoClear, "clear", false, "clear the memo")

	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemRemoveCmd)
	itemCmd.AddCommand(itemRenameCmd)
	itemCmd.AddCommand(itemMemoCmd)
	itemCmd.AddCommand(itemMoveCmd)
	itemCmd.AddCommand(itemReorderCmd)
	itemCmd.AddCommand(itemListCmd)
	rootCmd.AddCommand(itemCmd)
}
