package commands

import (
	"context"
	"fmt"
	"strings"

	"shelfbox/internal/domain"
	"shelfbox/internal/ports"
)

// SearchQuery is a parsed search input. Unset filters are empty strings.
type SearchQuery struct {
	FreeText      string // tokens without a recognized prefix, space-joined
	ShelfFilter   string // box: shelf-name substring
	TypeFilter    string // type: file|folder|url
	InShelfFilter string // in: exact shelf name
}

// IsEmpty reports whether neither free text nor any filter is set.
func (q SearchQuery) IsEmpty() bool {
	return q.FreeText == "" && q.ShelfFilter == "" && q.TypeFilter == "" && q.InShelfFilter == ""
}

// ParseSearchQuery tokenizes a query on whitespace. Prefixes box:, type:,
// and in: are recognized case-insensitively; a prefix token with an empty
// value leaves that filter unset. Everything else becomes free text.
func ParseSearchQuery(text string) SearchQuery {
	var q SearchQuery
	if strings.TrimSpace(text) == "" {
		return q
	}

	var freeText []string
	for _, token := range strings.Fields(text) {
		lower := strings.ToLower(token)
		switch {
		case strings.HasPrefix(lower, "box:"):
			if v := strings.TrimSpace(token[4:]); v != "" {
				q.ShelfFilter = v
			}
		case strings.HasPrefix(lower, "type:"):
			if v := strings.TrimSpace(token[5:]); v != "" {
				q.TypeFilter = v
			}
		case strings.HasPrefix(lower, "in:"):
			if v := strings.TrimSpace(token[3:]); v != "" {
				q.InShelfFilter = v
			}
		default:
			freeText = append(freeText, token)
		}
	}
	q.FreeText = strings.Join(freeText, " ")
	return q
}

// SearchItemsCommand runs a parsed query against the item store
type SearchItemsCommand struct {
	items   ports.ItemRepository
	shelves ports.ShelfRepository
	Query   string
}

// NewSearchItemsCommand creates a new SearchItemsCommand
func NewSearchItemsCommand(items ports.ItemRepository, shelves ports.ShelfRepository, query string) *SearchItemsCommand {
	return &SearchItemsCommand{
		items:   items,
		shelves: shelves,
		Query:   query,
	}
}

// Execute parses the query and returns matching items annotated with their
// shelf names. An empty query returns an empty result, not a browse-all.
func (c *SearchItemsCommand) Execute(ctx context.Context) ([]ItemWithShelf, error) {
	query := ParseSearchQuery(c.Query)
	if query.IsEmpty() {
		return []ItemWithShelf{}, nil
	}

	allShelves, err := c.shelves.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shelves: %w", err)
	}
	names := make(map[string]string, len(allShelves))
	for _, s := range allShelves {
		names[s.ID().String()] = s.Name()
	}

	candidates, err := c.items.Search(ctx, query.FreeText)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	// Supplemental pass: searching a shelf's name surfaces its contents.
	// Merged by item id so an item matching both passes appears once.
	if query.FreeText != "" {
		seen := make(map[string]bool, len(candidates))
		for _, item := range candidates {
			seen[item.ID().String()] = true
		}
		free := strings.ToLower(query.FreeText)
		for _, shelf := range allShelves {
			if !strings.Contains(strings.ToLower(shelf.Name()), free) {
				continue
			}
			owned, err := c.items.GetByShelfID(ctx, shelf.ID())
			if err != nil {
				return nil, fmt.Errorf("failed to load items of %s: %w", shelf.ID(), err)
			}
			for _, item := range owned {
				if !seen[item.ID().String()] {
					seen[item.ID().String()] = true
					candidates = append(candidates, item)
				}
			}
		}
	}

	filtered := candidates
	if query.TypeFilter != "" {
		if typ, err := domain.ParseItemType(query.TypeFilter); err == nil {
			filtered = filterItems(filtered, func(i *domain.Item) bool {
				return i.Type() == typ
			})
		}
	}
	if query.ShelfFilter != "" {
		want := strings.ToLower(query.ShelfFilter)
		filtered = filterItems(filtered, func(i *domain.Item) bool {
			name, ok := names[i.ShelfID().String()]
			return ok && strings.Contains(strings.ToLower(name), want)
		})
	}
	if query.InShelfFilter != "" {
		want := strings.ToLower(query.InShelfFilter)
		filtered = filterItems(filtered, func(i *domain.Item) bool {
			name, ok := names[i.ShelfID().String()]
			return ok && strings.ToLower(name) == want
		})
	}

	results := make([]ItemWithShelf, 0, len(filtered))
	for _, item := range filtered {
		results = append(results, annotate(item, names))
	}
	return results, nil
}

func filterItems(items []*domain.Item, keep func(*domain.Item) bool) []*domain.Item {
	filtered := items[:0:0]
	for _, i := range items {
		if keep(i) {
			filtered = append(filtered, i)
		}
	}
	return filtered
}
