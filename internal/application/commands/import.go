package commands

import (
	"context"
	"fmt"
	"time"

	"shelfbox/internal/domain"
	"shelfbox/internal/ports"
	"shelfbox/internal/transfer"
)

// ImportDataResult reports how many records an import actually inserted.
type ImportDataResult struct {
	ShelvesImported int
	ItemsImported   int
	Message         string
}

// ImportDataCommand loads an exported document into the store. Records are
// inserted one at a time; a malformed id or timestamp aborts the remainder
// but keeps rows already inserted.
type ImportDataCommand struct {
	shelves    ports.ShelfRepository
	items      ports.ItemRepository
	Data       *transfer.ExportData
	ReplaceAll bool
}

// NewImportDataCommand creates a new ImportDataCommand
func NewImportDataCommand(shelves ports.ShelfRepository, items ports.ItemRepository, data *transfer.ExportData, replaceAll bool) *ImportDataCommand {
	return &ImportDataCommand{
		shelves:    shelves,
		items:      items,
		Data:       data,
		ReplaceAll: replaceAll,
	}
}

// Execute runs the import command
func (c *ImportDataCommand) Execute(ctx context.Context) (*ImportDataResult, error) {
	if c.Data == nil {
		return nil, fmt.Errorf("no data to import")
	}

	if c.ReplaceAll {
		// Items first, shelves second, honoring FK-style integrity in the
		// backing store.
		existingItems, err := c.items.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load existing items: %w", err)
		}
		for _, item := range existingItems {
			if err := c.items.Delete(ctx, item.ID()); err != nil {
				return nil, fmt.Errorf("failed to clear item %s: %w", item.ID(), err)
			}
		}

		existingShelves, err := c.shelves.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load existing shelves: %w", err)
		}
		for _, shelf := range existingShelves {
			if err := c.shelves.Delete(ctx, shelf.ID()); err != nil {
				return nil, fmt.Errorf("failed to clear shelf %s: %w", shelf.ID(), err)
			}
		}
	}

	byID := make(map[string]*transfer.ShelfData, len(c.Data.Shelves))
	for i := range c.Data.Shelves {
		byID[c.Data.Shelves[i].ID] = &c.Data.Shelves[i]
	}

	shelvesImported := 0
	visited := make(map[string]bool)
	for i := range c.Data.Shelves {
		inserted, err := c.importShelf(ctx, &c.Data.Shelves[i], byID, visited)
		if err != nil {
			return nil, err
		}
		if inserted {
			shelvesImported++
		}
	}

	itemsImported := 0
	for i := range c.Data.Items {
		inserted, err := c.importItem(ctx, &c.Data.Items[i])
		if err != nil {
			return nil, err
		}
		if inserted {
			itemsImported++
		}
	}

	return &ImportDataResult{
		ShelvesImported: shelvesImported,
		ItemsImported:   itemsImported,
		Message:         fmt.Sprintf("Imported %d shelves, %d items", shelvesImported, itemsImported),
	}, nil
}

// importShelf inserts one shelf, importing its parent first when the parent
// is part of the input and not yet processed. The visited set keys on source
// id, which also makes cyclic input terminate. Returns true only when a row
// was actually inserted; an id already in the store is skipped, never
// overwritten.
func (c *ImportDataCommand) importShelf(ctx context.Context, sd *transfer.ShelfData, byID map[string]*transfer.ShelfData, visited map[string]bool) (bool, error) {
	if visited[sd.ID] {
		return false, nil
	}
	visited[sd.ID] = true

	if sd.ParentID != nil {
		if parent, ok := byID[*sd.ParentID]; ok && !visited[*sd.ParentID] {
			if _, err := c.importShelf(ctx, parent, byID, visited); err != nil {
				return false, err
			}
		}
	}

	shelfID, err := domain.ParseShelfID(sd.ID)
	if err != nil {
		return false, fmt.Errorf("malformed shelf id %q: %w", sd.ID, err)
	}

	existing, err := c.shelves.GetByID(ctx, shelfID)
	if err != nil {
		return false, fmt.Errorf("failed to check shelf %s: %w", shelfID, err)
	}
	if existing != nil {
		return false, nil
	}

	var parentID domain.ShelfID
	if sd.ParentID != nil {
		parentID, err = domain.ParseShelfID(*sd.ParentID)
		if err != nil {
			return false, fmt.Errorf("malformed parent id %q: %w", *sd.ParentID, err)
		}
	}

	shelf, err := domain.NewShelf(shelfID, sd.Name, parentID, sd.SortOrder, sd.IsPinned)
	if err != nil {
		return false, fmt.Errorf("invalid shelf %s: %w", sd.ID, err)
	}
	if err := c.shelves.Add(ctx, shelf); err != nil {
		return false, fmt.Errorf("failed to import shelf %s: %w", sd.ID, err)
	}
	return true, nil
}

// importItem inserts one item, skipping records whose shelf is absent from
// the store, whose type is out of range, or whose id already exists.
func (c *ImportDataCommand) importItem(ctx context.Context, rec *transfer.ItemData) (bool, error) {
	shelfID, err := domain.ParseShelfID(rec.ShelfID)
	if err != nil {
		return false, fmt.Errorf("malformed shelf id %q: %w", rec.ShelfID, err)
	}

	shelf, err := c.shelves.GetByID(ctx, shelfID)
	if err != nil {
		return false, fmt.Errorf("failed to check shelf %s: %w", shelfID, err)
	}
	if shelf == nil {
		return false, nil
	}

	itemType := domain.ItemType(rec.Type)
	if !itemType.Valid() {
		return false, nil
	}

	itemID, err := domain.ParseItemID(rec.ID)
	if err != nil {
		return false, fmt.Errorf("malformed item id %q: %w", rec.ID, err)
	}

	existing, err := c.items.GetByID(ctx, itemID)
	if err != nil {
		return false, fmt.Errorf("failed to check item %s: %w", itemID, err)
	}
	if existing != nil {
		return false, nil
	}

	createdAt, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("malformed createdAt %q: %w", rec.CreatedAt, err)
	}

	var lastAccessedAt *time.Time
	if rec.LastAccessedAt != nil {
		t, err := time.Parse(time.RFC3339Nano, *rec.LastAccessedAt)
		if err != nil {
			return false, fmt.Errorf("malformed lastAccessedAt %q: %w", *rec.LastAccessedAt, err)
		}
		lastAccessedAt = &t
	}

	item, err := domain.NewItem(itemID, shelfID, itemType, rec.Target, rec.DisplayName, rec.Memo, rec.SortOrder, createdAt, lastAccessedAt)
	if err != nil {
		return false, fmt.Errorf("invalid item %s: %w", rec.ID, err)
	}
	if err := c.items.Add(ctx, item); err != nil {
		return false, fmt.Errorf("failed to import item %s: %w", rec.ID, err)
	}
	return true, nil
}
