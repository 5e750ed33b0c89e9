package commands

import (
	"context"
	"fmt"

	"shelfbox/internal/application"
	"shelfbox/internal/domain"
	"shelfbox/internal/ports"
)

// ReorderShelvesResult contains the shelves updated by a reorder
type ReorderShelvesResult struct {
	UpdatedShelves []*domain.Shelf
	Message        string
}

// ReorderShelvesCommand assigns SortOrder = index for each shelf in the
// given order. An unknown id aborts; sort orders already written stay
// written (no rollback).
type ReorderShelvesCommand struct {
	shelves    ports.ShelfRepository
	OrderedIDs []domain.ShelfID
}

// NewReorderShelvesCommand creates a new ReorderShelvesCommand
func NewReorderShelvesCommand(shelves ports.ShelfRepository, orderedIDs []domain.ShelfID) *ReorderShelvesCommand {
	return &ReorderShelvesCommand{
		shelves:    shelves,
		OrderedIDs: orderedIDs,
	}
}

// Execute runs the reorder shelves command
func (c *ReorderShelvesCommand) Execute(ctx context.Context) (*ReorderShelvesResult, error) {
	if len(c.OrderedIDs) == 0 {
		return &ReorderShelvesResult{Message: "Nothing to reorder"}, nil
	}

	updated := make([]*domain.Shelf, 0, len(c.OrderedIDs))
	for i, shelfID := range c.OrderedIDs {
		shelf, err := c.shelves.GetByID(ctx, shelfID)
		if err != nil {
			return nil, fmt.Errorf("failed to load shelf: %w", err)
		}
		if shelf == nil {
			return nil, &application.NotFoundError{Entity: "shelf", ID: shelfID.String()}
		}

		shelf.SetSortOrder(i)
		if err := c.shelves.Update(ctx, shelf); err != nil {
			return nil, fmt.Errorf("failed to update shelf %s: %w", shelfID, err)
		}
		updated = append(updated, shelf)
	}

	return &ReorderShelvesResult{
		UpdatedShelves: updated,
		Message:        fmt.Sprintf("Reordered %d shelves", len(updated)),
	}, nil
}

// ReorderItemsResult contains the items updated by a reorder
type ReorderItemsResult struct {
	UpdatedItems []*domain.Item
	Message      string
}

// ReorderItemsCommand assigns SortOrder = index for each item in the given
// order, with the same abort and no-rollback behavior as shelf reorder.
type ReorderItemsCommand struct {
	items      ports.ItemRepository
	OrderedIDs []domain.ItemID
}

// NewReorderItemsCommand creates a new ReorderItemsCommand
func NewReorderItemsCommand(items ports.ItemRepository, orderedIDs []domain.ItemID) *ReorderItemsCommand {
	return &ReorderItemsCommand{
		items:      items,
		OrderedIDs: orderedIDs,
	}
}

// Execute runs the reorder items command
func (c *ReorderItemsCommand) Execute(ctx context.Context) (*ReorderItemsResult, error) {
	if len(c.OrderedIDs) == 0 {
		return &ReorderItemsResult{Message: "Nothing to reorder"}, nil
	}

	updated := make([]*domain.Item, 0, len(c.OrderedIDs))
	for i, itemID := range c.OrderedIDs {
		item, err := c.items.GetByID(ctx, itemID)
		if err != nil {
			return nil, fmt.Errorf("failed to load item: %w", err)
		}
		if item == nil {
			return nil, &application.NotFoundError{Entity: "item", ID: itemID.String()}
		}

		item.SetSortOrder(i)
		if err := c.items.Update(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to update item %s: %w", itemID, err)
		}
		updated = append(updated, item)
	}

	return &ReorderItemsResult{
		UpdatedItems: updated,
		Message:      fmt.Sprintf("Reordered %d items", len(updated)),
	}, nil
}
