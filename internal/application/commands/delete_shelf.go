package commands

import (
	"context"
	"fmt"

	"shelfbox/internal/application"
	"shelfbox/internal/domain"
	"shelfbox/internal/ports"
)

// DeleteShelfResult contains the result of a recursive shelf delete
type DeleteShelfResult struct {
	DeletedID domain.ShelfID
	Message   string
}

// DeleteShelfCommand deletes a shelf together with all descendant shelves
// and every item they own.
type DeleteShelfCommand struct {
	shelves ports.ShelfRepository
	items   ports.ItemRepository
	ShelfID domain.ShelfID
}

// NewDeleteShelfCommand creates a new DeleteShelfCommand
func NewDeleteShelfCommand(shelves ports.ShelfRepository, items ports.ItemRepository, shelfID domain.ShelfID) *DeleteShelfCommand {
	return &DeleteShelfCommand{
		shelves: shelves,
		items:   items,
		ShelfID: shelfID,
	}
}

// Execute runs the delete shelf command
func (c *DeleteShelfCommand) Execute(ctx context.Context) (*DeleteShelfResult, error) {
	shelf, err := c.shelves.GetByID(ctx, c.ShelfID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shelf: %w", err)
	}
	if shelf == nil {
		return nil, &application.NotFoundError{Entity: "shelf", ID: c.ShelfID.String()}
	}

	visited := make(map[string]bool)
	if err := c.deleteRecursive(ctx, c.ShelfID, visited); err != nil {
		return nil, err
	}

	return &DeleteShelfResult{
		DeletedID: c.ShelfID,
		Message:   fmt.Sprintf("Deleted shelf %s", shelf.Name()),
	}, nil
}

// deleteRecursive removes the subtree post-order: children first, then the
// shelf's items, then the shelf itself, so no item ever references a
// deleted shelf. The visited set guards against already-corrupt cyclic
// parent data.
func (c *DeleteShelfCommand) deleteRecursive(ctx context.Context, shelfID domain.ShelfID, visited map[string]bool) error {
	if visited[shelfID.String()] {
		return nil
	}
	visited[shelfID.String()] = true

	children, err := c.shelves.GetChildren(ctx, shelfID)
	if err != nil {
		return fmt.Errorf("failed to load children of %s: %w", shelfID, err)
	}
	for _, child := range children {
		if err := c.deleteRecursive(ctx, child.ID(), visited); err != nil {
			return err
		}
	}

	items, err := c.items.GetByShelfID(ctx, shelfID)
	if err != nil {
		return fmt.Errorf("failed to load items of %s: %w", shelfID, err)
	}
	for _, item := range items {
		if err := c.items.Delete(ctx, item.ID()); err != nil {
			return fmt.Errorf("failed to delete item %s: %w", item.ID(), err)
		}
	}

	if err := c.shelves.Delete(ctx, shelfID); err != nil {
		return fmt.Errorf("failed to delete shelf %s: %w", shelfID, err)
	}
	return nil
}
