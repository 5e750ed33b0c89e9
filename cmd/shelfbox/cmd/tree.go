package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shelfbox/internal/domain"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the shelf hierarchy",
	Long: `Print the shelf hierarchy as an indented tree with per-shelf item
counts. Pinned shelves are marked with *.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		roots, err := GetApp().BuildTree().Execute(context.Background())
		if err != nil {
			return err
		}
		if len(roots) == 0 {
			fmt.Println("No shelves.")
			return nil
		}
		for _, root := range roots {
			printTree(root, 0)
		}
		return nil
	},
}

func printTree(node *domain.TreeNode, depth int) {
	indent := strings.Repeat("  ", depth)
	pin := ""
	if node.Shelf.IsPinned() {
		pin = " *"
	}
	fmt.Printf("%s%s%s (%d)\n", indent, node.Shelf.Name(), pin, node.ItemCount)
	for _, child := range node.Children {
		printTree(child, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
