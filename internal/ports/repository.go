package ports

import (
	"context"

	"shelfbox/internal/domain"
)

// ShelfRepository defines the persistence interface for shelves.
// GetByID returns (nil, nil) when no shelf has the given ID.
type ShelfRepository interface {
	GetByID(ctx context.Context, id domain.ShelfID) (*domain.Shelf, error)
	GetAll(ctx context.Context) ([]*domain.Shelf, error)
	// GetChildren lists direct children of parentID in SortOrder. A zero
	// parentID lists root shelves.
	GetChildren(ctx context.Context, parentID domain.ShelfID) ([]*domain.Shelf, error)
	Add(ctx context.Context, shelf *domain.Shelf) error
	Update(ctx context.Context, shelf *domain.Shelf) error
	Delete(ctx context.Context, id domain.ShelfID) error
}

// ItemRepository defines the persistence interface for items.
// GetByID returns (nil, nil) when no item has the given ID.
type ItemRepository interface {
	GetByID(ctx context.Context, id domain.ItemID) (*domain.Item, error)
	GetByShelfID(ctx context.Context, shelfID domain.ShelfID) ([]*domain.Item, error)
	// Search matches query against display name, target, and memo,
	// case-insensitively.
	Search(ctx context.Context, query string) ([]*domain.Item, error)
	// GetRecent returns up to count items with a last-accessed timestamp,
	// most recent first.
	GetRecent(ctx context.Context, count int) ([]*domain.Item, error)
	GetAll(ctx context.Context) ([]*domain.Item, error)
	Add(ctx context.Context, item *domain.Item) error
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id domain.ItemID) error
	DeleteByShelfID(ctx context.Context, shelfID domain.ShelfID) error
}
