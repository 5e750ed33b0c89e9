package commands

import (
	"context"
	"fmt"

	"shelfbox/internal/application"
	"shelfbox/internal/domain"
	"shelfbox/internal/ports"
)

// ListShelvesCommand lists direct children of a parent shelf, or the roots
// when ParentID is zero.
type ListShelvesCommand struct {
	shelves  ports.ShelfRepository
	ParentID domain.ShelfID
}

// NewListShelvesCommand creates a new ListShelvesCommand
func NewListShelvesCommand(shelves ports.ShelfRepository, parentID domain.ShelfID) *ListShelvesCommand {
	return &ListShelvesCommand{
		shelves:  shelves,
		ParentID: parentID,
	}
}

// Execute runs the list shelves command
func (c *ListShelvesCommand) Execute(ctx context.Context) ([]*domain.Shelf, error) {
	if !c.ParentID.IsZero() {
		parent, err := c.shelves.GetByID(ctx, c.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load parent shelf: %w", err)
		}
		if parent == nil {
			return nil, &application.NotFoundError{Entity: "shelf", ID: c.ParentID.String()}
		}
	}
	return c.shelves.GetChildren(ctx, c.ParentID)
}

// ListItemsCommand lists the items of one shelf in sort order
type ListItemsCommand struct {
	items   ports.ItemRepository
	shelves ports.ShelfRepository
	ShelfID domain.ShelfID
}

// NewListItemsCommand creates a new ListItemsCommand
func NewListItemsCommand(items ports.ItemRepository, shelves ports.ShelfRepository, shelfID domain.ShelfID) *ListItemsCommand {
	return &ListItemsCommand{
		items:   items,
		shelves: shelves,
		ShelfID: shelfID,
	}
}

// Execute runs the list items command
func (c *ListItemsCommand) Execute(ctx context.Context) ([]*domain.Item, error) {
	shelf, err := c.shelves.GetByID(ctx, c.ShelfID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shelf: %w", err)
	}
	if shelf == nil {
		return nil, &application.NotFoundError{Entity: "shelf", ID: c.ShelfID.String()}
	}
	return c.items.GetByShelfID(ctx, c.ShelfID)
}

// BuildTreeCommand assembles the full shelf forest with per-shelf item
// counts for tree rendering.
type BuildTreeCommand struct {
	shelves ports.ShelfRepository
	items   ports.ItemRepository
}

// NewBuildTreeCommand creates a new BuildTreeCommand
func NewBuildTreeCommand(shelves ports.ShelfRepository, items ports.ItemRepository) *BuildTreeCommand {
	return &BuildTreeCommand{
		shelves: shelves,
		items:   items,
	}
}

// Execute runs the build tree command
func (c *BuildTreeCommand) Execute(ctx context.Context) ([]*domain.TreeNode, error) {
	shelves, err := c.shelves.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shelves: %w", err)
	}
	items, err := c.items.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	counts := make(map[string]int)
	for _, item := range items {
		counts[item.ShelfID().String()]++
	}
	return domain.BuildTree(shelves, counts), nil
}
