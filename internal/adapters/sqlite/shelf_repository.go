package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"shelfbox/internal/domain"
	"shelfbox/internal/ports"
)

// ShelfRepository implements ports.ShelfRepository over the store's
// shelves table.
type ShelfRepository struct {
	store *Store
}

var _ ports.ShelfRepository = (*ShelfRepository)(nil)

// NewShelfRepository creates a shelf repository over the store
func NewShelfRepository(store *Store) *ShelfRepository {
	return &ShelfRepository{store: store}
}

const shelfColumns = "id, name, parent_id, sort_order, is_pinned"

func (r *ShelfRepository) GetByID(ctx context.Context, id domain.ShelfID) (*domain.Shelf, error) {
	row := r.store.db.QueryRowContext(ctx,
		"SELECT "+shelfColumns+" FROM shelves WHERE id = ?", id.String())
	shelf, err := scanShelf(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return shelf, err
}

func (r *ShelfRepository) GetAll(ctx context.Context) ([]*domain.Shelf, error) {
	rows, err := r.store.db.QueryContext(ctx,
		"SELECT "+shelfColumns+" FROM shelves ORDER BY sort_order")
	if err != nil {
		return nil, fmt.Errorf("failed to query shelves: %w", err)
	}
	defer rows.Close()
	return collectShelves(rows)
}

func (r *ShelfRepository) GetChildren(ctx context.Context, parentID domain.ShelfID) ([]*domain.Shelf, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if parentID.IsZero() {
		rows, err = r.store.db.QueryContext(ctx,
			"SELECT "+shelfColumns+" FROM shelves WHERE parent_id IS NULL ORDER BY sort_order")
	} else {
		rows, err = r.store.db.QueryContext(ctx,
			"SELECT "+shelfColumns+" FROM shelves WHERE parent_id = ? ORDER BY sort_order", parentID.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query children: %w", err)
	}
	defer rows.Close()
	return collectShelves(rows)
}

func (r *ShelfRepository) Add(ctx context.Context, shelf *domain.Shelf) error {
	_, err := r.store.db.ExecContext(ctx, `
		INSERT INTO shelves (id, name, parent_id, sort_order, is_pinned)
		VALUES (?, ?, ?, ?, ?)
	`, shelf.ID().String(), shelf.Name(), nullableID(shelf.ParentID()), shelf.SortOrder(), boolToInt(shelf.IsPinned()))
	if err != nil {
		return fmt.Errorf("failed to insert shelf: %w", err)
	}
	return nil
}

func (r *ShelfRepository) Update(ctx context.Context, shelf *domain.Shelf) error {
	_, err := r.store.db.ExecContext(ctx, `
		UPDATE shelves
		SET name = ?, parent_id = ?, sort_order = ?, is_pinned = ?
		WHERE id = ?
	`, shelf.Name(), nullableID(shelf.ParentID()), shelf.SortOrder(), boolToInt(shelf.IsPinned()), shelf.ID().String())
	if err != nil {
		return fmt.Errorf("failed to update shelf: %w", err)
	}
	return nil
}

func (r *ShelfRepository) Delete(ctx context.Context, id domain.ShelfID) error {
	_, err := r.store.db.ExecContext(ctx, "DELETE FROM shelves WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("failed to delete shelf: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShelf(row rowScanner) (*domain.Shelf, error) {
	var (
		idStr     string
		name      string
		parentStr sql.NullString
		sortOrder int
		pinned    int
	)
	if err := row.Scan(&idStr, &name, &parentStr, &sortOrder, &pinned); err != nil {
		return nil, err
	}

	id, err := domain.ParseShelfID(idStr)
	if err != nil {
		return nil, fmt.Errorf("corrupt shelf id %q: %w", idStr, err)
	}
	var parentID domain.ShelfID
	if parentStr.Valid {
		parentID, err = domain.ParseShelfID(parentStr.String)
		if err != nil {
			return nil, fmt.Errorf("corrupt parent id %q: %w", parentStr.String, err)
		}
	}
	return domain.NewShelf(id, name, parentID, sortOrder, pinned != 0)
}

func collectShelves(rows *sql.Rows) ([]*domain.Shelf, error) {
	var shelves []*domain.Shelf
	for rows.Next() {
		shelf, err := scanShelf(rows)
		if err != nil {
			return nil, err
		}
		shelves = append(shelves, shelf)
	}
	return shelves, rows.Err()
}

func nullableID(id domain.ShelfID) any {
	if id.IsZero() {
		return nil
	}
	return id.String()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
