package commands

import (
	"context"
	"fmt"

	"shelfbox/internal/ports"
)

// DefaultRecentCount caps recent-item listings when no count is given.
const DefaultRecentCount = 20

// RecentItemsCommand lists recently launched items, most recent first
type RecentItemsCommand struct {
	items   ports.ItemRepository
	shelves ports.ShelfRepository
	Count   int
}

// NewRecentItemsCommand creates a new RecentItemsCommand. A count of 0 or
// less uses DefaultRecentCount.
func NewRecentItemsCommand(items ports.ItemRepository, shelves ports.ShelfRepository, count int) *RecentItemsCommand {
	return &RecentItemsCommand{
		items:   items,
		shelves: shelves,
		Count:   count,
	}
}

// Execute runs the recent items command
func (c *RecentItemsCommand) Execute(ctx context.Context) ([]ItemWithShelf, error) {
	count := c.Count
	if count <= 0 {
		count = DefaultRecentCount
	}

	recent, err := c.items.GetRecent(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent items: %w", err)
	}

	names, err := shelfNameMap(ctx, c.shelves)
	if err != nil {
		return nil, fmt.Errorf("failed to load shelves: %w", err)
	}

	result := make([]ItemWithShelf, 0, len(recent))
	for _, item := range recent {
		result = append(result, annotate(item, names))
	}
	return result, nil
}

// MissingItemsCommand lists items whose targets no longer exist
type MissingItemsCommand struct {
	items     ports.ItemRepository
	shelves   ports.ShelfRepository
	existence ports.ExistenceChecker
}

// NewMissingItemsCommand creates a new MissingItemsCommand
func NewMissingItemsCommand(items ports.ItemRepository, shelves ports.ShelfRepository, existence ports.ExistenceChecker) *MissingItemsCommand {
	return &MissingItemsCommand{
		items:     items,
		shelves:   shelves,
		existence: existence,
	}
}

// Execute runs the missing items command
func (c *MissingItemsCommand) Execute(ctx context.Context) ([]ItemWithShelf, error) {
	all, err := c.items.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	names, err := shelfNameMap(ctx, c.shelves)
	if err != nil {
		return nil, fmt.Errorf("failed to load shelves: %w", err)
	}

	var missing []ItemWithShelf
	for _, item := range all {
		if !c.existence.Exists(item.Target()) {
			missing = append(missing, annotate(item, names))
		}
	}
	return missing, nil
}
