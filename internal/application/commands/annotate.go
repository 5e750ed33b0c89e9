package commands

import (
	"context"

	"shelfbox/internal/domain"
	"shelfbox/internal/ports"
)

// UnknownShelfName annotates items whose owning shelf no longer exists.
const UnknownShelfName = "Unknown"

// ItemWithShelf pairs an item with its owning shelf's name for display.
type ItemWithShelf struct {
	Item      *domain.Item
	ShelfName string
}

// shelfNameMap loads all shelves keyed by id string.
func shelfNameMap(ctx context.Context, shelves ports.ShelfRepository) (map[string]string, error) {
	all, err := shelves.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(all))
	for _, s := range all {
		names[s.ID().String()] = s.Name()
	}
	return names, nil
}

func annotate(item *domain.Item, names map[string]string) ItemWithShelf {
	name, ok := names[item.ShelfID().String()]
	if !ok {
		name = UnknownShelfName
	}
	return ItemWithShelf{Item: item, ShelfName: name}
}
