package commands

import (
	"context"
	"fmt"

	"shelfbox/internal/application"
	"shelfbox/internal/domain"
	"shelfbox/internal/ports"
)

// MoveShelfResult contains the result of reparenting a shelf
type MoveShelfResult struct {
	Shelf   *domain.Shelf
	Message string
}

// MoveShelfCommand moves a shelf under a new parent, or to the root when
// NewParentID is zero.
type MoveShelfCommand struct {
	shelves     ports.ShelfRepository
	ShelfID     domain.ShelfID
	NewParentID domain.ShelfID
}

// NewMoveShelfCommand creates a new MoveShelfCommand
func NewMoveShelfCommand(shelves ports.ShelfRepository, shelfID, newParentID domain.ShelfID) *MoveShelfCommand {
	return &MoveShelfCommand{
		shelves:     shelves,
		ShelfID:     shelfID,
		NewParentID: newParentID,
	}
}

// Execute runs the move shelf command
func (c *MoveShelfCommand) Execute(ctx context.Context) (*MoveShelfResult, error) {
	shelf, err := c.shelves.GetByID(ctx, c.ShelfID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shelf: %w", err)
	}
	if shelf == nil {
		return nil, &application.NotFoundError{Entity: "shelf", ID: c.ShelfID.String()}
	}

	if !c.NewParentID.IsZero() {
		if c.NewParentID == c.ShelfID {
			return nil, &application.MoveError{
				SourceID: c.ShelfID.String(),
				DestID:   c.NewParentID.String(),
				Reason:   "a shelf cannot become its own parent",
			}
		}

		parent, err := c.shelves.GetByID(ctx, c.NewParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load parent shelf: %w", err)
		}
		if parent == nil {
			return nil, &application.NotFoundError{Entity: "parent shelf", ID: c.NewParentID.String()}
		}

		descendant, err := c.isDescendant(ctx, c.NewParentID, c.ShelfID)
		if err != nil {
			return nil, err
		}
		if descendant {
			return nil, &application.MoveError{
				SourceID: c.ShelfID.String(),
				DestID:   c.NewParentID.String(),
				Reason:   "a shelf cannot move into its own descendant",
			}
		}
	}

	shelf.MoveTo(c.NewParentID)
	if err := c.shelves.Update(ctx, shelf); err != nil {
		return nil, fmt.Errorf("failed to move shelf: %w", err)
	}

	return &MoveShelfResult{
		Shelf:   shelf,
		Message: fmt.Sprintf("Moved shelf %s", shelf.Name()),
	}, nil
}

// isDescendant walks the parent chain from targetID and reports whether it
// reaches ancestorID. The visited set stops the walk on already-corrupt
// cyclic data.
func (c *MoveShelfCommand) isDescendant(ctx context.Context, targetID, ancestorID domain.ShelfID) (bool, error) {
	visited := make(map[string]bool)
	current, err := c.shelves.GetByID(ctx, targetID)
	if err != nil {
		return false, fmt.Errorf("failed to walk parent chain: %w", err)
	}
	for current != nil && !current.ParentID().IsZero() {
		if current.ParentID() == ancestorID {
			return true, nil
		}
		if visited[current.ID().String()] {
			return false, nil
		}
		visited[current.ID().String()] = true

		current, err = c.shelves.GetByID(ctx, current.ParentID())
		if err != nil {
			return false, fmt.Errorf("failed to walk parent chain: %w", err)
		}
	}
	return false, nil
}

// MoveItemResult contains the result of moving an item between shelves
type MoveItemResult struct {
	Item    *domain.Item
	Message string
}

// MoveItemCommand moves an item to another shelf, re-checking the target
// shelf for a duplicate reference. Moving to the item's current shelf is
// legal.
type MoveItemCommand struct {
	items         ports.ItemRepository
	shelves       ports.ShelfRepository
	ItemID        domain.ItemID
	TargetShelfID domain.ShelfID
}

// NewMoveItemCommand creates a new MoveItemCommand
func NewMoveItemCommand(items ports.ItemRepository, shelves ports.ShelfRepository, itemID domain.ItemID, targetShelfID domain.ShelfID) *MoveItemCommand {
	return &MoveItemCommand{
		items:         items,
		shelves:       shelves,
		ItemID:        itemID,
		TargetShelfID: targetShelfID,
	}
}

// Execute runs the move item command
func (c *MoveItemCommand) Execute(ctx context.Context) (*MoveItemResult, error) {
	item, err := c.items.GetByID(ctx, c.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if item == nil {
		return nil, &application.NotFoundError{Entity: "item", ID: c.ItemID.String()}
	}

	shelf, err := c.shelves.GetByID(ctx, c.TargetShelfID)
	if err != nil {
		return nil, fmt.Errorf("failed to load target shelf: %w", err)
	}
	if shelf == nil {
		return nil, &application.NotFoundError{Entity: "shelf", ID: c.TargetShelfID.String()}
	}

	existing, err := c.items.GetByShelfID(ctx, c.TargetShelfID)
	if err != nil {
		return nil, fmt.Errorf("failed to load target shelf items: %w", err)
	}
	for _, other := range existing {
		if other.ID() != item.ID() && other.SameReference(item.Type(), item.Target()) {
			return nil, &application.DuplicateError{
				ShelfID: c.TargetShelfID.String(),
				Reason:  "an item with the same reference already exists in the target shelf",
			}
		}
	}

	item.MoveToShelf(c.TargetShelfID)
	item.SetSortOrder(nextItemSortOrder(existing))

	if err := c.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to move item: %w", err)
	}

	return &MoveItemResult{
		Item:    item,
		Message: fmt.Sprintf("Moved %s to %s", item.DisplayName(), shelf.Name()),
	}, nil
}
