package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"shelfbox/internal/config"
)

var recentCount int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently launched items",
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := GetApp().RecentItems(recentCount).Execute(context.Background())
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No recently launched items.")
			return nil
		}
		for _, r := range results {
			when := ""
			if at := r.Item.LastAccessedAt(); at != nil {
				when = at.Local().Format(time.DateTime)
			}
			fmt.Printf("%s  %s  (%s)  %s\n", r.Item.ID(), r.Item.DisplayName(), r.ShelfName, when)
		}
		return nil
	},
}

var missingCmd = &cobra.Command{
	Use:   "missing",
	Short: "List file and folder items whose target no longer exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := GetApp().MissingItems().Execute(context.Background())
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("All item targets exist.")
			return nil
		}
		for _, r := range results {
			fmt.Printf("%s  %s  (%s)  %s\n", r.Item.ID(), r.Item.DisplayName(), r.ShelfName, r.Item.Target())
		}
		return nil
	},
}

func init() {
	recentCmd.Flags().IntVarP(&recentCount, "count", "n", config.RecentCount(), "maximum number of items")

	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(missingCmd)
}
