package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shelfbox/internal/domain"
)

var shelfCmd = &cobra.Command{
	Use:   "shelf",
	Short: "Manage shelves",
	Long: `Create, rename, move, pin, reorder, and delete shelves.

Examples:
  shelfbox shelf create "Work"
  shelfbox shelf create "Projects" --parent <shelf-id>
  shelfbox shelf move <shelf-id> <new-parent-id>
  shelfbox shelf delete <shelf-id>`,
}

var shelfParentID string

var shelfCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a shelf, optionally under a parent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var parentID domain.ShelfID
		if shelfParentID != "" {
			var err error
			parentID, err = domain.ParseShelfID(shelfParentID)
			if err != nil {
				return fmt.Errorf("invalid parent id: %w", err)
			}
		}

		result, err := GetApp().CreateShelf(args[0], parentID).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n", result.Message, result.Shelf.ID())
		return nil
	},
}

var shelfRenameCmd = &cobra.Command{
	Use:   "rename <shelf-id> <new-name>",
	Short: "Rename a shelf",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		shelfID, err := domain.ParseShelfID(args[0])
		if err != nil {
			return fmt.Errorf("invalid shelf id: %w", err)
		}

		result, err := GetApp().RenameShelf(shelfID, args[1]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var shelfDeleteCmd = &cobra.Command{
	Use:   "delete <shelf-id>",
	Short: "Delete a shelf, its descendants, and all their items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shelfID, err := domain.ParseShelfID(args[0])
		if err != nil {
			return fmt.Errorf("invalid shelf id: %w", err)
		}

		result, err := GetApp().DeleteShelf(shelfID).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var shelfMoveCmd = &cobra.Command{
	Use:   "move <shelf-id> [new-parent-id]",
	Short: "Move a shelf under a new parent, or to the root",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		shelfID, err := domain.ParseShelfID(args[0])
		if err != nil {
			return fmt.Errorf("invalid shelf id: %w", err)
		}
		var parentID domain.ShelfID
		if len(args) == 2 {
			parentID, err = domain.ParseShelfID(args[1])
			if err != nil {
				return fmt.Errorf("invalid parent id: %w", err)
			}
		}

		result, err := GetApp().MoveShelf(shelfID, parentID).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var shelfPinCmd = &cobra.Command{
	Use:   "pin <shelf-id>",
	Short: "Toggle a shelf's pinned flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shelfID, err := domain.ParseShelfID(args[0])
		if err != nil {
			return fmt.Errorf("invalid shelf id: %w", err)
		}

		result, err := GetApp().TogglePin(shelfID).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var shelfReorderCmd = &cobra.Command{
	Use:   "reorder <shelf-id>...",
	Short: "Assign display order to shelves in the given sequence",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]domain.ShelfID, 0, len(args))
		for _, arg := range args {
			id, err := domain.ParseShelfID(arg)
			if err != nil {
				return fmt.Errorf("invalid shelf id %q: %w", arg, err)
			}
			ids = append(ids, id)
		}

		result, err := GetApp().ReorderShelves(ids).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var shelfListCmd = &cobra.Command{
	Use:   "list [parent-id]",
	Short: "List root shelves, or the children of a shelf",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var parentID domain.ShelfID
		if len(args) == 1 {
			var err error
			parentID, err = domain.ParseShelfID(args[0])
			if err != nil {
				return fmt.Errorf("invalid shelf id: %w", err)
			}
		}

		shelves, err := GetApp().ListShelves(parentID).Execute(context.Background())
		if err != nil {
			return err
		}
		for _, s := range shelves {
			pin := ""
			if s.IsPinned() {
				pin = " *"
			}
			fmt.Printf("%s  %s%s\n", s.ID(), s.Name(), pin)
		}
		return nil
	},
}

func init() {
	shelfCreateCmd.Flags().StringVar(&shelfParentID, "parent", "", "parent shelf id")

	shelfCmd.AddCommand(shelfCreateCmd)
	shelfCmd.AddCommand(shelfRenameCmd)
	shelfCmd.AddCommand(shelfDeleteCmd)
	shelfCmd.AddCommand(shelfMoveCmd)
	shelfCmd.AddCommand(shelfPinCmd)
	shelfCmd.AddCommand(shelfReorderCmd)
	shelfCmd.AddCommand(shelfListCmd)
	rootCmd.AddCommand(shelfCmd)
}
