package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"shelfbox/internal/domain"
	"shelfbox/internal/ports"
)

// ItemRepository implements ports.ItemRepository in memory
type ItemRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Item
}

var _ ports.ItemRepository = (*ItemRepository)(nil)

// NewItemRepository creates an empty in-memory item repository
func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[string]*domain.Item)}
}

func (r *ItemRepository) GetByID(_ context.Context, id domain.ItemID) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id.String()]
	if !ok {
		return nil, nil
	}
	return copyItem(item), nil
}

func (r *ItemRepository) GetByShelfID(_ context.Context, shelfID domain.ShelfID) ([]*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var owned []*domain.Item
	for _, i := range r.items {
		if i.ShelfID() == shelfID {
			owned = append(owned, copyItem(i))
		}
	}
	sortItems(owned)
	return owned, nil
}

func (r *ItemRepository) Search(_ context.Context, query string) ([]*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q := strings.ToLower(query)
	var matched []*domain.Item
	for _, i := range r.items {
		if strings.Contains(strings.ToLower(i.DisplayName()), q) ||
			strings.Contains(strings.ToLower(i.Target()), q) ||
			(i.Memo() != nil && strings.Contains(strings.ToLower(*i.Memo()), q)) {
			matched = append(matched, copyItem(i))
		}
	}
	sortItems(matched)
	return matched, nil
}

func (r *ItemRepository) GetRecent(_ context.Context, count int) ([]*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var accessed []*domain.Item
	for _, i := range r.items {
		if i.LastAccessedAt() != nil {
			accessed = append(accessed, copyItem(i))
		}
	}
	sort.SliceStable(accessed, func(a, b int) bool {
		return accessed[a].LastAccessedAt().After(*accessed[b].LastAccessedAt())
	})
	if len(accessed) > count {
		accessed = accessed[:count]
	}
	return accessed, nil
}

func (r *ItemRepository) GetAll(_ context.Context) ([]*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*domain.Item, 0, len(r.items))
	for _, i := range r.items {
		all = append(all, copyItem(i))
	}
	sortItems(all)
	return all, nil
}

func (r *ItemRepository) Add(_ context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID().String()] = copyItem(item)
	return nil
}

func (r *ItemRepository) Update(_ context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID().String()] = copyItem(item)
	return nil
}

func (r *ItemRepository) Delete(_ context.Context, id domain.ItemID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id.String())
	return nil
}

func (r *ItemRepository) DeleteByShelfID(_ context.Context, shelfID domain.ShelfID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, i := range r.items {
		if i.ShelfID() == shelfID {
			delete(r.items, key)
		}
	}
	return nil
}

func copyItem(i *domain.Item) *domain.Item {
	cp := *i
	return &cp
}

func sortItems(items []*domain.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortOrder() < items[j].SortOrder()
	})
}
