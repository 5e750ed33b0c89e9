package commands

import (
	"context"
	"errors"
	"testing"

	"shelfbox/internal/application"
	"shelfbox/internal/domain"
)

func TestListShelvesCommand(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	rootA := env.addShelf(t, "A", domain.ShelfID{})
	env.addShelf(t, "B", domain.ShelfID{})
	child := env.addShelf(t, "Child", rootA.ID())

	roots, err := NewListShelvesCommand(env.shelves, domain.ShelfID{}).Execute(ctx)
	if err != nil {
		t.Fatalf("list roots failed: %v", err)
	}
	if len(roots) != 2 {
		t.Errorf("expected 2 roots, got %d", len(roots))
	}

	children, err := NewListShelvesCommand(env.shelves, rootA.ID()).Execute(ctx)
	if err != nil {
		t.Fatalf("list children failed: %v", err)
	}
	if len(children) != 1 || children[0].ID() != child.ID() {
		t.Errorf("expected only Child under A, got %d shelves", len(children))
	}

	_, err = NewListShelvesCommand(env.shelves, domain.NewShelfID()).Execute(ctx)
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown parent, got %v", err)
	}
}

func TestListItemsCommand(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	shelf := env.addShelf(t, "Shelf", domain.ShelfID{})
	env.addItem(t, shelf.ID(), domain.ItemTypeFile, "/tmp/a", "A")
	env.addItem(t, shelf.ID(), domain.ItemTypeFile, "/tmp/b", "B")

	items, err := NewListItemsCommand(env.items, env.shelves, shelf.ID()).Execute(ctx)
	if err != nil {
		t.Fatalf("list items failed: %v", err)
	}
	if len(items) != 2 || items[0].DisplayName() != "A" {
		t.Errorf("expected A then B, got %d items", len(items))
	}

	_, err = NewListItemsCommand(env.items, env.shelves, domain.NewShelfID()).Execute(ctx)
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown shelf, got %v", err)
	}
}

func TestBuildTreeCommand(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	root := env.addShelf(t, "Root", domain.ShelfID{})
	child := env.addShelf(t, "Child", root.ID())
	env.addItem(t, root.ID(), domain.ItemTypeFile, "/tmp/a", "A")
	env.addItem(t, child.ID(), domain.ItemTypeFile, "/tmp/b", "B")
	env.addItem(t, child.ID(), domain.ItemTypeFile, "/tmp/c", "C")

	roots, err := NewBuildTreeCommand(env.shelves, env.items).Execute(ctx)
	if err != nil {
		t.Fatalf("build tree failed: %v", err)
	}
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	if roots[0].ItemCount != 1 {
		t.Errorf("expected root count 1, got %d", roots[0].ItemCount)
	}
	if len(roots[0].Children) != 1 || roots[0].Children[0].ItemCount != 2 {
		t.Errorf("expected child with count 2")
	}
}
