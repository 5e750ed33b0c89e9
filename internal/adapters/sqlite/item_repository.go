package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"shelfbox/internal/domain"
	"shelfbox/internal/ports"
)

// ItemRepository implements ports.ItemRepository over the store's items
// table.
type ItemRepository struct {
	store *Store
}

var _ ports.ItemRepository = (*ItemRepository)(nil)

// NewItemRepository creates an item repository over the store
func NewItemRepository(store *Store) *ItemRepository {
	return &ItemRepository{store: store}
}

const itemColumns = "id, shelf_id, type, target, display_name, memo, sort_order, created_at, last_accessed_at"

func (r *ItemRepository) GetByID(ctx context.Context, id domain.ItemID) (*domain.Item, error) {
	row := r.store.db.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM items WHERE id = ?", id.String())
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return item, err
}

func (r *ItemRepository) GetByShelfID(ctx context.Context, shelfID domain.ShelfID) ([]*domain.Item, error) {
	rows, err := r.store.db.QueryContext(ctx,
		"SELECT "+itemColumns+" FROM items WHERE shelf_id = ? ORDER BY sort_order", shelfID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query shelf items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *ItemRepository) Search(ctx context.Context, query string) ([]*domain.Item, error) {
	pattern := "%" + query + "%"
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT `+itemColumns+` FROM items
		WHERE display_name LIKE ? COLLATE NOCASE
		   OR target LIKE ? COLLATE NOCASE
		   OR memo LIKE ? COLLATE NOCASE
		ORDER BY sort_order
	`, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *ItemRepository) GetRecent(ctx context.Context, count int) ([]*domain.Item, error) {
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT `+itemColumns+` FROM items
		WHERE last_accessed_at IS NOT NULL
		ORDER BY last_accessed_at DESC
		LIMIT ?
	`, count)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *ItemRepository) GetAll(ctx context.Context) ([]*domain.Item, error) {
	rows, err := r.store.db.QueryContext(ctx,
		"SELECT "+itemColumns+" FROM items ORDER BY sort_order")
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *ItemRepository) Add(ctx context.Context, item *domain.Item) error {
	_, err := r.store.db.ExecContext(ctx, `
		INSERT INTO items (id, shelf_id, type, target, display_name, memo, sort_order, created_at, last_accessed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, item.ID().String(), item.ShelfID().String(), int(item.Type()), item.Target(), item.DisplayName(),
		nullableString(item.Memo()), item.SortOrder(), formatTime(item.CreatedAt()), nullableTime(item.LastAccessedAt()))
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) error {
	_, err := r.store.db.ExecContext(ctx, `
		UPDATE items
		SET shelf_id = ?, display_name = ?, memo = ?, sort_order = ?, last_accessed_at = ?
		WHERE id = ?
	`, item.ShelfID().String(), item.DisplayName(), nullableString(item.Memo()),
		item.SortOrder(), nullableTime(item.LastAccessedAt()), item.ID().String())
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id domain.ItemID) error {
	_, err := r.store.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

func (r *ItemRepository) DeleteByShelfID(ctx context.Context, shelfID domain.ShelfID) error {
	_, err := r.store.db.ExecContext(ctx, "DELETE FROM items WHERE shelf_id = ?", shelfID.String())
	if err != nil {
		return fmt.Errorf("failed to delete shelf items: %w", err)
	}
	return nil
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var (
		idStr      string
		shelfStr   string
		itemType   int
		target     string
		name       string
		memo       sql.NullString
		sortOrder  int
		createdStr string
		accessStr  sql.NullString
	)
	if err := row.Scan(&idStr, &shelfStr, &itemType, &target, &name, &memo, &sortOrder, &createdStr, &accessStr); err != nil {
		return nil, err
	}

	id, err := domain.ParseItemID(idStr)
	if err != nil {
		return nil, fmt.Errorf("corrupt item id %q: %w", idStr, err)
	}
	shelfID, err := domain.ParseShelfID(shelfStr)
	if err != nil {
		return nil, fmt.Errorf("corrupt shelf id %q: %w", shelfStr, err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, createdStr)
	if err != nil {
		return nil, fmt.Errorf("corrupt created_at %q: %w", createdStr, err)
	}

	var memoPtr *string
	if memo.Valid {
		memoPtr = &memo.String
	}
	var accessedAt *time.Time
	if accessStr.Valid {
		t, err := time.Parse(time.RFC3339Nano, accessStr.String)
		if err != nil {
			return nil, fmt.Errorf("corrupt last_accessed_at %q: %w", accessStr.String, err)
		}
		accessedAt = &t
	}

	return domain.NewItem(id, shelfID, domain.ItemType(itemType), target, name, memoPtr, sortOrder, createdAt, accessedAt)
}

func collectItems(rows *sql.Rows) ([]*domain.Item, error) {
	var items []*domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}
