package domain

import (
	"testing"
)

func mustShelf(t *testing.T, name string, parentID ShelfID, sortOrder int) *Shelf {
	t.Helper()
	shelf, err := NewShelf(NewShelfID(), name, parentID, sortOrder, false)
	if err != nil {
		t.Fatalf("NewShelf failed: %v", err)
	}
	return shelf
}

func TestBuildTree_Hierarchy(t *testing.T) {
	root := mustShelf(t, "Root", ShelfID{}, 0)
	childA := mustShelf(t, "A", root.ID(), 1)
	childB := mustShelf(t, "B", root.ID(), 0)
	grand := mustShelf(t, "Grand", childA.ID(), 0)

	counts := map[string]int{
		root.ID().String():  2,
		grand.ID().String(): 5,
	}

	roots := BuildTree([]*Shelf{root, childA, childB, grand}, counts)

	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	node := roots[0]
	if node.Shelf.Name() != "Root" {
		t.Errorf("expected root named Root, got %q", node.Shelf.Name())
	}
	if node.ItemCount != 2 {
		t.Errorf("expected item count 2, got %d", node.ItemCount)
	}

	if len(node.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(node.Children))
	}
	// Siblings sort by SortOrder: B (0) before A (1).
	if node.Children[0].Shelf.Name() != "B" || node.Children[1].Shelf.Name() != "A" {
		t.Errorf("children out of order: %q, %q", node.Children[0].Shelf.Name(), node.Children[1].Shelf.Name())
	}

	a := node.Children[1]
	if len(a.Children) != 1 || a.Children[0].Shelf.Name() != "Grand" {
		t.Fatalf("expected Grand under A")
	}
	if a.Children[0].Depth() != 2 {
		t.Errorf("expected depth 2, got %d", a.Children[0].Depth())
	}
}

func TestBuildTree_MissingParentBecomesRoot(t *testing.T) {
	orphan := mustShelf(t, "Orphan", NewShelfID(), 0)

	roots := BuildTree([]*Shelf{orphan}, nil)

	if len(roots) != 1 {
		t.Fatalf("expected orphan promoted to root, got %d roots", len(roots))
	}
	if roots[0].Parent != nil {
		t.Error("orphan root should have no parent node")
	}
}

func TestBuildTree_Empty(t *testing.T) {
	if roots := BuildTree(nil, nil); len(roots) != 0 {
		t.Errorf("expected no roots, got %d", len(roots))
	}
}

func TestTreeNode_Flatten(t *testing.T) {
	root := mustShelf(t, "Root", ShelfID{}, 0)
	child := mustShelf(t, "Child", root.ID(), 0)
	grand := mustShelf(t, "Grand", child.ID(), 0)

	roots := BuildTree([]*Shelf{root, child, grand}, nil)
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}

	flat := roots[0].Flatten()
	if len(flat) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(flat))
	}
	want := []string{"Root", "Child", "Grand"}
	for i, name := range want {
		if flat[i].Shelf.Name() != name {
			t.Errorf("flat[%d] = %q, want %q", i, flat[i].Shelf.Name(), name)
		}
	}
}
