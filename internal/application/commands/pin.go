package commands

import (
	"context"
	"fmt"

	"shelfbox/internal/application"
	"shelfbox/internal/domain"
	"shelfbox/internal/ports"
)

// TogglePinResult contains the result of toggling a shelf's pin
type TogglePinResult struct {
	Shelf    *domain.Shelf
	IsPinned bool
	Message  string
}

// TogglePinCommand flips a shelf's pinned flag
type TogglePinCommand struct {
	shelves ports.ShelfRepository
	ShelfID domain.ShelfID
}

// NewTogglePinCommand creates a new TogglePinCommand
func NewTogglePinCommand(shelves ports.ShelfRepository, shelfID domain.ShelfID) *TogglePinCommand {
	return &TogglePinCommand{
		shelves: shelves,
		ShelfID: shelfID,
	}
}

// Execute runs the toggle pin command
func (c *TogglePinCommand) Execute(ctx context.Context) (*TogglePinResult, error) {
	shelf, err := c.shelves.GetByID(ctx, c.ShelfID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shelf: %w", err)
	}
	if shelf == nil {
		return nil, &application.NotFoundError{Entity: "shelf", ID: c.ShelfID.String()}
	}

	pinned := shelf.TogglePin()
	if err := c.shelves.Update(ctx, shelf); err != nil {
		return nil, fmt.Errorf("failed to update shelf: %w", err)
	}

	verb := "Unpinned"
	if pinned {
		verb = "Pinned"
	}
	return &TogglePinResult{
		Shelf:    shelf,
		IsPinned: pinned,
		Message:  fmt.Sprintf("%s shelf %s", verb, shelf.Name()),
	}, nil
}
