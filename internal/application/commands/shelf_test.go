package commands

import (
	"context"
	"errors"
	"testing"

	"shelfbox/internal/application"
	"shelfbox/internal/domain"
)

func TestCreateShelfCommand_SequentialSortOrders(t *testing.T) {
	env := newTestEnv()

	a := env.addShelf(t, "A", domain.ShelfID{})
	b := env.addShelf(t, "B", domain.ShelfID{})
	c := env.addShelf(t, "C", domain.ShelfID{})

	for i, shelf := range []*domain.Shelf{a, b, c} {
		if shelf.SortOrder() != i {
			t.Errorf("shelf %s: expected sort order %d, got %d", shelf.Name(), i, shelf.SortOrder())
		}
	}
}

func TestCreateShelfCommand_SiblingOrdersPerParent(t *testing.T) {
	env := newTestEnv()

	parent := env.addShelf(t, "Parent", domain.ShelfID{})
	env.addShelf(t, "Other Root", domain.ShelfID{})
	child := env.addShelf(t, "Child", parent.ID())

	if child.SortOrder() != 0 {
		t.Errorf("first child should get order 0, got %d", child.SortOrder())
	}
}

func TestCreateShelfCommand_Validation(t *testing.T) {
	env := newTestEnv()

	for _, name := range []string{"", "   ", "\t"} {
		_, err := NewCreateShelfCommand(env.shelves, name, domain.ShelfID{}).Execute(context.Background())
		var verr *application.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("name %q: expected ValidationError, got %v", name, err)
		}
	}
}

func TestCreateShelfCommand_MissingParent(t *testing.T) {
	env := newTestEnv()

	_, err := NewCreateShelfCommand(env.shelves, "Child", domain.NewShelfID()).Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRenameShelfCommand(t *testing.T) {
	env := newTestEnv()
	shelf := env.addShelf(t, "Old", domain.ShelfID{})

	result, err := NewRenameShelfCommand(env.shelves, shelf.ID(), "New").Execute(context.Background())
	if err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if result.Shelf.Name() != "New" {
		t.Errorf("expected New, got %q", result.Shelf.Name())
	}

	stored, err := env.shelves.GetByID(context.Background(), shelf.ID())
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if stored.Name() != "New" {
		t.Errorf("rename not persisted, got %q", stored.Name())
	}
}

func TestRenameShelfCommand_NotFound(t *testing.T) {
	env := newTestEnv()

	_, err := NewRenameShelfCommand(env.shelves, domain.NewShelfID(), "New").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteShelfCommand_CascadesToDescendants(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	root := env.addShelf(t, "Root", domain.ShelfID{})
	child := env.addShelf(t, "Child", root.ID())
	grand := env.addShelf(t, "Grand", child.ID())
	keep := env.addShelf(t, "Keep", domain.ShelfID{})

	env.addItem(t, root.ID(), domain.ItemTypeFile, "/tmp/a", "A")
	env.addItem(t, grand.ID(), domain.ItemTypeFile, "/tmp/b", "B")
	kept := env.addItem(t, keep.ID(), domain.ItemTypeFile, "/tmp/c", "C")

	if _, err := NewDeleteShelfCommand(env.shelves, env.items, root.ID()).Execute(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	for _, id := range []domain.ShelfID{root.ID(), child.ID(), grand.ID()} {
		shelf, err := env.shelves.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("reload failed: %v", err)
		}
		if shelf != nil {
			t.Errorf("shelf %s should be deleted", id)
		}
	}

	items, err := env.items.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(items) != 1 || items[0].ID() != kept.ID() {
		t.Errorf("expected only the unrelated item to survive, got %d items", len(items))
	}
}

func TestMoveShelfCommand_RejectsCycles(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	a := env.addShelf(t, "A", domain.ShelfID{})
	b := env.addShelf(t, "B", a.ID())
	c := env.addShelf(t, "C", b.ID())

	tests := []struct {
		name   string
		source domain.ShelfID
		dest   domain.ShelfID
	}{
		{name: "into own descendant", source: a.ID(), dest: c.ID()},
		{name: "into itself", source: a.ID(), dest: a.ID()},
		{name: "into direct child", source: a.ID(), dest: b.ID()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMoveShelfCommand(env.shelves, tt.source, tt.dest).Execute(ctx)
			if !errors.Is(err, application.ErrInvalidMove) {
				t.Errorf("expected ErrInvalidMove, got %v", err)
			}
		})
	}
}

func TestMoveShelfCommand_ToRootAndBack(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	a := env.addShelf(t, "A", domain.ShelfID{})
	b := env.addShelf(t, "B", a.ID())

	if _, err := NewMoveShelfCommand(env.shelves, b.ID(), domain.ShelfID{}).Execute(ctx); err != nil {
		t.Fatalf("move to root failed: %v", err)
	}
	stored, _ := env.shelves.GetByID(ctx, b.ID())
	if !stored.ParentID().IsZero() {
		t.Error("shelf should be a root after moving to zero parent")
	}

	if _, err := NewMoveShelfCommand(env.shelves, b.ID(), a.ID()).Execute(ctx); err != nil {
		t.Fatalf("move under A failed: %v", err)
	}
	stored, _ = env.shelves.GetByID(ctx, b.ID())
	if stored.ParentID() != a.ID() {
		t.Errorf("expected parent %s, got %s", a.ID(), stored.ParentID())
	}
}

func TestTogglePinCommand(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	shelf := env.addShelf(t, "Pins", domain.ShelfID{})

	result, err := NewTogglePinCommand(env.shelves, shelf.ID()).Execute(ctx)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !result.IsPinned {
		t.Error("first toggle should pin")
	}

	result, err = NewTogglePinCommand(env.shelves, shelf.ID()).Execute(ctx)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if result.IsPinned {
		t.Error("second toggle should unpin")
	}

	stored, _ := env.shelves.GetByID(ctx, shelf.ID())
	if stored.IsPinned() {
		t.Error("unpinned state not persisted")
	}
}

func TestReorderShelvesCommand(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	x := env.addShelf(t, "X", domain.ShelfID{})
	y := env.addShelf(t, "Y", domain.ShelfID{})
	z := env.addShelf(t, "Z", domain.ShelfID{})

	result, err := NewReorderShelvesCommand(env.shelves, []domain.ShelfID{z.ID(), x.ID(), y.ID()}).Execute(ctx)
	if err != nil {
		t.Fatalf("reorder failed: %v", err)
	}
	if len(result.UpdatedShelves) != 3 {
		t.Fatalf("expected 3 updates, got %d", len(result.UpdatedShelves))
	}

	want := map[string]int{"Z": 0, "X": 1, "Y": 2}
	all, _ := env.shelves.GetAll(ctx)
	for _, shelf := range all {
		if shelf.SortOrder() != want[shelf.Name()] {
			t.Errorf("shelf %s: expected order %d, got %d", shelf.Name(), want[shelf.Name()], shelf.SortOrder())
		}
	}
}

func TestReorderShelvesCommand_Empty(t *testing.T) {
	env := newTestEnv()

	result, err := NewReorderShelvesCommand(env.shelves, nil).Execute(context.Background())
	if err != nil {
		t.Fatalf("empty reorder should succeed, got %v", err)
	}
	if len(result.UpdatedShelves) != 0 {
		t.Errorf("expected no updates, got %d", len(result.UpdatedShelves))
	}
}

func TestReorderShelvesCommand_UnknownIDAborts(t *testing.T) {
	env := newTestEnv()

	x := env.addShelf(t, "X", domain.ShelfID{})
	_, err := NewReorderShelvesCommand(env.shelves, []domain.ShelfID{x.ID(), domain.NewShelfID()}).Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
