package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search items by text and filters",
	Long: `Search items by free text with optional filters.

Free text matches item names, targets, memos, and shelf names.
Prefixed tokens narrow the result:
  box:<name>   shelves whose name contains <name>
  type:<kind>  file, folder, or url
  in:<name>    exact shelf name

Examples:
  shelfbox search readme
  shelfbox search "report box:Work type:file"
  shelfbox search "type:url in:Bookmarks"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := GetApp().SearchItems(strings.Join(args, " ")).Execute(context.Background())
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No items found.")
			return nil
		}
		for _, r := range results {
			fmt.Printf("%s  [%s]  %s  (%s)\n", r.Item.ID(), r.Item.Type(), r.Item.DisplayName(), r.ShelfName)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
