package memory

import (
	"context"
	"testing"
	"time"

	"shelfbox/internal/domain"
)

func TestShelfRepository_StoresCopies(t *testing.T) {
	repo := NewShelfRepository()
	ctx := context.Background()

	shelf, err := domain.NewShelf(domain.NewShelfID(), "Original", domain.ShelfID{}, 0, false)
	if err != nil {
		t.Fatalf("NewShelf failed: %v", err)
	}
	if err := repo.Add(ctx, shelf); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Mutating the caller's entity must not leak into the store.
	if err := shelf.Rename("Mutated"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	stored, err := repo.GetByID(ctx, shelf.ID())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.Name() != "Original" {
		t.Errorf("store should hold a copy, got %q", stored.Name())
	}

	// Likewise mutating a retrieved entity.
	if err := stored.Rename("Tampered"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	again, _ := repo.GetByID(ctx, shelf.ID())
	if again.Name() != "Original" {
		t.Errorf("retrieval should hand out a copy, got %q", again.Name())
	}
}

func TestItemRepository_GetByShelfID_SortsByOrder(t *testing.T) {
	repo := NewItemRepository()
	ctx := context.Background()
	shelfID := domain.NewShelfID()

	for i, name := range []string{"Third", "First", "Second"} {
		order := []int{2, 0, 1}[i]
		item, err := domain.NewItem(domain.NewItemID(), shelfID, domain.ItemTypeFile, "/tmp/"+name, name, nil, order, time.Now(), nil)
		if err != nil {
			t.Fatalf("NewItem failed: %v", err)
		}
		if err := repo.Add(ctx, item); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	items, err := repo.GetByShelfID(ctx, shelfID)
	if err != nil {
		t.Fatalf("GetByShelfID failed: %v", err)
	}
	want := []string{"First", "Second", "Third"}
	for i, name := range want {
		if items[i].DisplayName() != name {
			t.Errorf("items[%d] = %q, want %q", i, items[i].DisplayName(), name)
		}
	}
}

func TestItemRepository_SearchIsCaseInsensitive(t *testing.T) {
	repo := NewItemRepository()
	ctx := context.Background()

	item, err := domain.NewItem(domain.NewItemID(), domain.NewShelfID(), domain.ItemTypeFile, "/tmp/Report.PDF", "Annual REPORT", nil, 0, time.Now(), nil)
	if err != nil {
		t.Fatalf("NewItem failed: %v", err)
	}
	if err := repo.Add(ctx, item); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, err := repo.Search(ctx, "report")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected a case-insensitive match, got %d results", len(got))
	}
}
