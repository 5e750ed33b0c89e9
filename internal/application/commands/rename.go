package commands

import (
	"context"
	"fmt"

	"shelfbox/internal/application"
	"shelfbox/internal/domain"
	"shelfbox/internal/ports"
)

// RenameShelfResult contains the result of renaming a shelf
type RenameShelfResult struct {
	Shelf   *domain.Shelf
	Message string
}

// RenameShelfCommand renames a shelf
type RenameShelfCommand struct {
	shelves ports.ShelfRepository
	ShelfID domain.ShelfID
	NewName string
}

// NewRenameShelfCommand creates a new RenameShelfCommand
func NewRenameShelfCommand(shelves ports.ShelfRepository, shelfID domain.ShelfID, newName string) *RenameShelfCommand {
	return &RenameShelfCommand{
		shelves: shelves,
		ShelfID: shelfID,
		NewName: newName,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameShelfCommand) Validate() error {
	return application.ValidateRequired("name", c.NewName)
}

// Execute runs the rename shelf command
func (c *RenameShelfCommand) Execute(ctx context.Context) (*RenameShelfResult, error) {
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

	if err := shelf.Rename(c.NewName); err != nil {
		return nil, &application.ValidationError{Field: "name", Message: err.Error()}
	}

	if err := c.shelves.Update(ctx, shelf); err != nil {
		return nil, fmt.Errorf("failed to rename shelf: %w", err)
	}

	return &RenameShelfResult{
		Shelf:   shelf,
		Message: fmt.Sprintf("Renamed shelf to %s", shelf.Name()),
	}, nil
}

// RenameItemResult contains the result of renaming an item
type RenameItemResult struct {
	Item    *domain.Item
	Message string
}

// RenameItemCommand changes an item's display name
type RenameItemCommand struct {
	items   ports.ItemRepository
	ItemID  domain.ItemID
	NewName string
}

// NewRenameItemCommand creates a new RenameItemCommand
func NewRenameItemCommand(items ports.ItemRepository, itemID domain.ItemID, newName string) *RenameItemCommand {
	return &RenameItemCommand{
		items:   items,
		ItemID:  itemID,
		NewName: newName,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameItemCommand) Validate() error {
	return application.ValidateRequired("displayName", c.NewName)
}

// Execute runs the rename item command
func (c *RenameItemCommand) Execute(ctx context.Context) (*RenameItemResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	item, err := c.items.GetByID(ctx, c.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if item == nil {
		return nil, &application.NotFoundError{Entity: "item", ID: c.ItemID.String()}
	}

	if err := item.Rename(c.NewName); err != nil {
		return nil, &application.ValidationError{Field: "displayName", Message: err.Error()}
	}

	if err := c.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to rename item: %w", err)
	}

	return &RenameItemResult{
		Item:    item,
		Message: fmt.Sprintf("Renamed item to %s", item.DisplayName()),
	}, nil
}
