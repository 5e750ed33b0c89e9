// Package memory provides mutex-guarded in-memory repositories. They back
// the command tests and ephemeral runs; entities are copied on the way in
// and out so callers never share mutable state with the store.
package memory

import (
	"context"
	"sort"
	"sync"

	"shelfbox/internal/domain"
	"shelfbox/internal/ports"
)

// ShelfRepository implements ports.ShelfRepository in memory
type ShelfRepository struct {
	mu      sync.RWMutex
	shelves map[string]*domain.Shelf
}

var _ ports.ShelfRepository = (*ShelfRepository)(nil)

// NewShelfRepository creates an empty in-memory shelf repository
func NewShelfRepository() *ShelfRepository {
	return &ShelfRepository{shelves: make(map[string]*domain.Shelf)}
}

func (r *ShelfRepository) GetByID(_ context.Context, id domain.ShelfID) (*domain.Shelf, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	shelf, ok := r.shelves[id.String()]
	if !ok {
		return nil, nil
	}
	return copyShelf(shelf), nil
}

func (r *ShelfRepository) GetAll(_ context.Context) ([]*domain.Shelf, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*domain.Shelf, 0, len(r.shelves))
	for _, s := range r.shelves {
		all = append(all, copyShelf(s))
	}
	sortShelves(all)
	return all, nil
}

func (r *ShelfRepository) GetChildren(_ context.Context, parentID domain.ShelfID) ([]*domain.Shelf, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var children []*domain.Shelf
	for _, s := range r.shelves {
		if s.ParentID() == parentID {
			children = append(children, copyShelf(s))
		}
	}
	sortShelves(children)
	return children, nil
}

func (r *ShelfRepository) Add(_ context.Context, shelf *domain.Shelf) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shelves[shelf.ID().String()] = copyShelf(shelf)
	return nil
}

func (r *ShelfRepository) Update(_ context.Context, shelf *domain.Shelf) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shelves[shelf.ID().String()] = copyShelf(shelf)
	return nil
}

func (r *ShelfRepository) Delete(_ context.Context, id domain.ShelfID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.shelves, id.String())
	return nil
}

func copyShelf(s *domain.Shelf) *domain.Shelf {
	cp := *s
	return &cp
}

func sortShelves(shelves []*domain.Shelf) {
	sort.SliceStable(shelves, func(i, j int) bool {
		return shelves[i].SortOrder() < shelves[j].SortOrder()
	})
}
