package commands

import (
	"context"
	"fmt"

	"shelfbox/internal/application"
	"shelfbox/internal/domain"
	"shelfbox/internal/ports"
)

// AddItemResult contains the result of adding an item
type AddItemResult struct {
	Item    *domain.Item
	Message string
}

// AddItemCommand adds a file/folder/url reference to a shelf
type AddItemCommand struct {
	items       ports.ItemRepository
	shelves     ports.ShelfRepository
	clock       ports.Clock
	ShelfID     domain.ShelfID
	Type        domain.ItemType
	Target      string
	DisplayName string
	Memo        *string
}

// NewAddItemCommand creates a new AddItemCommand
func NewAddItemCommand(items ports.ItemRepository, shelves ports.ShelfRepository, clock ports.Clock, shelfID domain.ShelfID, itemType domain.ItemType, target, displayName string, memo *string) *AddItemCommand {
	return &AddItemCommand{
		items:       items,
		shelves:     shelves,
		clock:       clock,
		ShelfID:     shelfID,
		Type:        itemType,
		Target:      target,
		DisplayName: displayName,
		Memo:        memo,
	}
}

// Validate checks if the add operation is valid
func (c *AddItemCommand) Validate() error {
	if err := application.ValidateRequired("target", c.Target); err != nil {
		return err
	}
	return application.ValidateRequired("displayName", c.DisplayName)
}

// Execute runs the add item command
func (c *AddItemCommand) Execute(ctx context.Context) (*AddItemResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	shelf, err := c.shelves.GetByID(ctx, c.ShelfID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shelf: %w", err)
	}
	if shelf == nil {
		return nil, &application.NotFoundError{Entity: "shelf", ID: c.ShelfID.String()}
	}

	existing, err := c.items.GetByShelfID(ctx, c.ShelfID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shelf items: %w", err)
	}
	for _, other := range existing {
		if other.SameReference(c.Type, c.Target) {
			return nil, &application.DuplicateError{
				ShelfID: c.ShelfID.String(),
				Reason:  "an item with the same type and target already exists in this shelf",
			}
		}
	}

	item, err := domain.NewItem(domain.NewItemID(), c.ShelfID, c.Type, c.Target, c.DisplayName, c.Memo, nextItemSortOrder(existing), c.clock.Now(), nil)
	if err != nil {
		return nil, &application.ValidationError{Field: "item", Message: err.Error()}
	}

	if err := c.items.Add(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}

	return &AddItemResult{
		Item:    item,
		Message: fmt.Sprintf("Added %s to %s", item.DisplayName(), shelf.Name()),
	}, nil
}

// nextItemSortOrder returns max existing order + 1, 0 for an empty shelf.
func nextItemSortOrder(items []*domain.Item) int {
	if len(items) == 0 {
		return 0
	}
	max := items[0].SortOrder()
	for _, i := range items[1:] {
		if i.SortOrder() > max {
			max = i.SortOrder()
		}
	}
	return max + 1
}
