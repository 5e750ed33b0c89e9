package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"shelfbox/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustShelf(t *testing.T, name string, parentID domain.ShelfID, sortOrder int, pinned bool) *domain.Shelf {
	t.Helper()
	shelf, err := domain.NewShelf(domain.NewShelfID(), name, parentID, sortOrder, pinned)
	if err != nil {
		t.Fatalf("NewShelf failed: %v", err)
	}
	return shelf
}

func mustItem(t *testing.T, shelfID domain.ShelfID, target, name string) *domain.Item {
	t.Helper()
	item, err := domain.NewItem(domain.NewItemID(), shelfID, domain.ItemTypeFile, target, name, nil, 0, time.Now().UTC(), nil)
	if err != nil {
		t.Fatalf("NewItem failed: %v", err)
	}
	return item
}

func TestShelfRepository_RoundTrip(t *testing.T) {
	store := openTestStore(t)
	repo := NewShelfRepository(store)
	ctx := context.Background()

	root := mustShelf(t, "Root", domain.ShelfID{}, 0, true)
	child := mustShelf(t, "Child", root.ID(), 1, false)

	if err := repo.Add(ctx, root); err != nil {
		t.Fatalf("Add root failed: %v", err)
	}
	if err := repo.Add(ctx, child); err != nil {
		t.Fatalf("Add child failed: %v", err)
	}

	got, err := repo.GetByID(ctx, child.ID())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("child not found")
	}
	if got.Name() != "Child" || got.ParentID() != root.ID() || got.SortOrder() != 1 {
		t.Errorf("child round trip mismatch: %q parent=%s order=%d", got.Name(), got.ParentID(), got.SortOrder())
	}

	gotRoot, err := repo.GetByID(ctx, root.ID())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !gotRoot.ParentID().IsZero() {
		t.Error("root shelf should load with a zero parent")
	}
	if !gotRoot.IsPinned() {
		t.Error("pinned flag lost")
	}
}

func TestShelfRepository_GetByID_Missing(t *testing.T) {
	store := openTestStore(t)
	repo := NewShelfRepository(store)

	got, err := repo.GetByID(context.Background(), domain.NewShelfID())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != nil {
		t.Error("missing shelf should return nil, nil")
	}
}

func TestShelfRepository_GetChildren(t *testing.T) {
	store := openTestStore(t)
	repo := NewShelfRepository(store)
	ctx := context.Background()

	rootB := mustShelf(t, "B", domain.ShelfID{}, 1, false)
	rootA := mustShelf(t, "A", domain.ShelfID{}, 0, false)
	child := mustShelf(t, "Child", rootA.ID(), 0, false)
	for _, s := range []*domain.Shelf{rootB, rootA, child} {
		if err := repo.Add(ctx, s); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	roots, err := repo.GetChildren(ctx, domain.ShelfID{})
	if err != nil {
		t.Fatalf("GetChildren failed: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if roots[0].Name() != "A" || roots[1].Name() != "B" {
		t.Errorf("roots should sort by order: got %q, %q", roots[0].Name(), roots[1].Name())
	}

	children, err := repo.GetChildren(ctx, rootA.ID())
	if err != nil {
		t.Fatalf("GetChildren failed: %v", err)
	}
	if len(children) != 1 || children[0].ID() != child.ID() {
		t.Errorf("expected only Child under A, got %d shelves", len(children))
	}
}

func TestShelfRepository_UpdateAndDelete(t *testing.T) {
	store := openTestStore(t)
	repo := NewShelfRepository(store)
	ctx := context.Background()

	shelf := mustShelf(t, "Before", domain.ShelfID{}, 0, false)
	if err := repo.Add(ctx, shelf); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := shelf.Rename("After"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	shelf.Pin()
	if err := repo.Update(ctx, shelf); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, _ := repo.GetByID(ctx, shelf.ID())
	if got.Name() != "After" || !got.IsPinned() {
		t.Errorf("update not persisted: %q pinned=%v", got.Name(), got.IsPinned())
	}

	if err := repo.Delete(ctx, shelf.ID()); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got, _ = repo.GetByID(ctx, shelf.ID())
	if got != nil {
		t.Error("shelf should be gone after delete")
	}
}

func TestItemRepository_RoundTrip(t *testing.T) {
	store := openTestStore(t)
	shelves := NewShelfRepository(store)
	items := NewItemRepository(store)
	ctx := context.Background()

	shelf := mustShelf(t, "Shelf", domain.ShelfID{}, 0, false)
	if err := shelves.Add(ctx, shelf); err != nil {
		t.Fatalf("Add shelf failed: %v", err)
	}

	memo := "remember this"
	created := time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)
	accessed := created.Add(time.Hour)
	item, err := domain.NewItem(domain.NewItemID(), shelf.ID(), domain.ItemTypeURL, "https://example.com", "Example", &memo, 3, created, &accessed)
	if err != nil {
		t.Fatalf("NewItem failed: %v", err)
	}
	if err := items.Add(ctx, item); err != nil {
		t.Fatalf("Add item failed: %v", err)
	}

	got, err := items.GetByID(ctx, item.ID())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("item not found")
	}
	if got.Type() != domain.ItemTypeURL || got.Target() != "https://example.com" || got.SortOrder() != 3 {
		t.Errorf("item round trip mismatch: type=%v target=%q order=%d", got.Type(), got.Target(), got.SortOrder())
	}
	if got.Memo() == nil || *got.Memo() != memo {
		t.Errorf("memo lost: %v", got.Memo())
	}
	if !got.CreatedAt().Equal(created) {
		t.Errorf("created time mismatch: %v", got.CreatedAt())
	}
	if at := got.LastAccessedAt(); at == nil || !at.Equal(accessed) {
		t.Errorf("access time mismatch: %v", at)
	}
}

func TestItemRepository_Search(t *testing.T) {
	store := openTestStore(t)
	shelves := NewShelfRepository(store)
	items := NewItemRepository(store)
	ctx := context.Background()

	shelf := mustShelf(t, "Shelf", domain.ShelfID{}, 0, false)
	if err := shelves.Add(ctx, shelf); err != nil {
		t.Fatalf("Add shelf failed: %v", err)
	}

	memo := "quarterly REPORT numbers"
	byName, _ := domain.NewItem(domain.NewItemID(), shelf.ID(), domain.ItemTypeFile, "/tmp/a", "Annual Report", nil, 0, time.Now().UTC(), nil)
	byTarget, _ := domain.NewItem(domain.NewItemID(), shelf.ID(), domain.ItemTypeFile, "/tmp/reports/q3.xlsx", "Q3", nil, 1, time.Now().UTC(), nil)
	byMemo, _ := domain.NewItem(domain.NewItemID(), shelf.ID(), domain.ItemTypeFile, "/tmp/c", "Numbers", &memo, 2, time.Now().UTC(), nil)
	other, _ := domain.NewItem(domain.NewItemID(), shelf.ID(), domain.ItemTypeFile, "/tmp/d", "Unrelated", nil, 3, time.Now().UTC(), nil)
	for _, it := range []*domain.Item{byName, byTarget, byMemo, other} {
		if err := items.Add(ctx, it); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	got, err := items.Search(ctx, "report")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected matches on name, target, and memo (3), got %d", len(got))
	}

	all, err := items.Search(ctx, "")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("empty text should match every row, got %d", len(all))
	}
}

func TestItemRepository_GetRecent(t *testing.T) {
	store := openTestStore(t)
	shelves := NewShelfRepository(store)
	items := NewItemRepository(store)
	ctx := context.Background()

	shelf := mustShelf(t, "Shelf", domain.ShelfID{}, 0, false)
	if err := shelves.Add(ctx, shelf); err != nil {
		t.Fatalf("Add shelf failed: %v", err)
	}

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	never := mustItem(t, shelf.ID(), "/tmp/never", "Never")
	old := mustItem(t, shelf.ID(), "/tmp/old", "Old")
	old.MarkAccessed(base)
	fresh := mustItem(t, shelf.ID(), "/tmp/fresh", "Fresh")
	fresh.MarkAccessed(base.Add(time.Hour))
	for _, it := range []*domain.Item{never, old, fresh} {
		if err := items.Add(ctx, it); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	got, err := items.GetRecent(ctx, 10)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("never-launched items must not appear, got %d", len(got))
	}
	if got[0].DisplayName() != "Fresh" || got[1].DisplayName() != "Old" {
		t.Errorf("expected Fresh then Old, got %q, %q", got[0].DisplayName(), got[1].DisplayName())
	}

	capped, err := items.GetRecent(ctx, 1)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(capped) != 1 || capped[0].DisplayName() != "Fresh" {
		t.Errorf("count cap not applied")
	}
}

func TestItemRepository_DeleteByShelfID(t *testing.T) {
	store := openTestStore(t)
	shelves := NewShelfRepository(store)
	items := NewItemRepository(store)
	ctx := context.Background()

	a := mustShelf(t, "A", domain.ShelfID{}, 0, false)
	b := mustShelf(t, "B", domain.ShelfID{}, 1, false)
	for _, s := range []*domain.Shelf{a, b} {
		if err := shelves.Add(ctx, s); err != nil {
			t.Fatalf("Add shelf failed: %v", err)
		}
	}
	if err := items.Add(ctx, mustItem(t, a.ID(), "/tmp/1", "One")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := items.Add(ctx, mustItem(t, b.ID(), "/tmp/2", "Two")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := items.DeleteByShelfID(ctx, a.ID()); err != nil {
		t.Fatalf("DeleteByShelfID failed: %v", err)
	}

	remaining, _ := items.GetAll(ctx)
	if len(remaining) != 1 || remaining[0].DisplayName() != "Two" {
		t.Errorf("expected only B's item to remain, got %d items", len(remaining))
	}
}

func TestSettingsRepository(t *testing.T) {
	store := openTestStore(t)
	repo := NewSettingsRepository(store)
	ctx := context.Background()

	if _, ok, err := repo.Get(ctx, "Absent"); err != nil || ok {
		t.Errorf("absent key should report ok=false, got ok=%v err=%v", ok, err)
	}

	if err := repo.Set(ctx, "GlobalHotkey", "Ctrl+Shift+Space"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := repo.Set(ctx, "GlobalHotkey", "Alt+Space"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	value, ok, err := repo.Get(ctx, "GlobalHotkey")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || value != "Alt+Space" {
		t.Errorf("expected Alt+Space, got %q ok=%v", value, ok)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 setting, got %d", len(all))
	}

	if err := repo.Remove(ctx, "GlobalHotkey"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, ok, _ := repo.Get(ctx, "GlobalHotkey"); ok {
		t.Error("removed key should be absent")
	}
}
