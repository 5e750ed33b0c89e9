package commands

import (
	"context"
	"fmt"
	"time"

	"shelfbox/internal/ports"
	"shelfbox/internal/transfer"
)

// ExportDataCommand snapshots the whole shelf/item graph into a versioned
// document.
type ExportDataCommand struct {
	shelves ports.ShelfRepository
	items   ports.ItemRepository
	clock   ports.Clock
}

// NewExportDataCommand creates a new ExportDataCommand
func NewExportDataCommand(shelves ports.ShelfRepository, items ports.ItemRepository, clock ports.Clock) *ExportDataCommand {
	return &ExportDataCommand{
		shelves: shelves,
		items:   items,
		clock:   clock,
	}
}

// Execute runs the export command
func (c *ExportDataCommand) Execute(ctx context.Context) (*transfer.ExportData, error) {
	shelves, err := c.shelves.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shelves: %w", err)
	}
	items, err := c.items.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	data := &transfer.ExportData{
		Version:    transfer.FormatVersion,
		ExportedAt: c.clock.Now().UTC().Format(time.RFC3339Nano),
		Shelves:    make([]transfer.ShelfData, 0, len(shelves)),
		Items:      make([]transfer.ItemData, 0, len(items)),
	}

	for _, s := range shelves {
		sd := transfer.ShelfData{
			ID:        s.ID().String(),
			Name:      s.Name(),
			SortOrder: s.SortOrder(),
			IsPinned:  s.IsPinned(),
		}
		if !s.ParentID().IsZero() {
			p := s.ParentID().String()
			sd.ParentID = &p
		}
		data.Shelves = append(data.Shelves, sd)
	}

	for _, i := range items {
		rec := transfer.ItemData{
			ID:          i.ID().String(),
			ShelfID:     i.ShelfID().String(),
			Type:        int(i.Type()),
			Target:      i.Target(),
			DisplayName: i.DisplayName(),
			Memo:        i.Memo(),
			SortOrder:   i.SortOrder(),
			CreatedAt:   i.CreatedAt().UTC().Format(time.RFC3339Nano),
		}
		if at := i.LastAccessedAt(); at != nil {
			s := at.UTC().Format(time.RFC3339Nano)
			rec.LastAccessedAt = &s
		}
		data.Items = append(data.Items, rec)
	}

	return data, nil
}
