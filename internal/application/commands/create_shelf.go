package commands

import (
	"context"
	"fmt"

	"shelfbox/internal/application"
	"shelfbox/internal/domain"
	"shelfbox/internal/ports"
)

// CreateShelfResult contains the result of creating a shelf
type CreateShelfResult struct {
	Shelf   *domain.Shelf
	Message string
}

// CreateShelfCommand creates a shelf, optionally nested under a parent
type CreateShelfCommand struct {
	shelves  ports.ShelfRepository
	Name     string
	ParentID domain.ShelfID
}

// NewCreateShelfCommand creates a new CreateShelfCommand
func NewCreateShelfCommand(shelves ports.ShelfRepository, name string, parentID domain.ShelfID) *CreateShelfCommand {
	return &CreateShelfCommand{
		shelves:  shelves,
		Name:     name,
		ParentID: parentID,
	}
}

// Validate checks if the create operation is valid
func (c *CreateShelfCommand) Validate() error {
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the create shelf command
func (c *CreateShelfCommand) Execute(ctx context.Context) (*CreateShelfResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if !c.ParentID.IsZero() {
		parent, err := c.shelves.GetByID(ctx, c.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load parent shelf: %w", err)
		}
		if parent == nil {
			return nil, &application.NotFoundError{Entity: "parent shelf", ID: c.ParentID.String()}
		}
	}

	siblings, err := c.shelves.GetChildren(ctx, c.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load siblings: %w", err)
	}

	shelf, err := domain.NewShelf(domain.NewShelfID(), c.Name, c.ParentID, nextShelfSortOrder(siblings), false)
	if err != nil {
		return nil, &application.ValidationError{Field: "name", Message: err.Error()}
	}

	if err := c.shelves.Add(ctx, shelf); err != nil {
		return nil, fmt.Errorf("failed to create shelf: %w", err)
	}

	return &CreateShelfResult{
		Shelf:   shelf,
		Message: fmt.Sprintf("Created shelf: %s", shelf.Name()),
	}, nil
}

// nextShelfSortOrder returns max existing sibling order + 1, 0 when there
// are no siblings.
func nextShelfSortOrder(siblings []*domain.Shelf) int {
	if len(siblings) == 0 {
		return 0
	}
	max := siblings[0].SortOrder()
	for _, s := range siblings[1:] {
		if s.SortOrder() > max {
			max = s.SortOrder()
		}
	}
	return max + 1
}
