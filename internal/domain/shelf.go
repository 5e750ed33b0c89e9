package domain

import (
	"errors"
	"strings"
)

// ErrEmptyName is returned when a shelf name is empty or whitespace.
var ErrEmptyName = errors.New("shelf name cannot be empty")

// Shelf is a named container for items. Shelves form a forest: a shelf with
// a zero ParentID is a root.
type Shelf struct {
	id        ShelfID
	name      string
	parentID  ShelfID
	sortOrder int
	pinned    bool
}

// NewShelf constructs a shelf, validating the name. Repositories rehydrate
// stored rows through this same constructor so corrupt data surfaces as an
// error instead of a bad entity.
func NewShelf(id ShelfID, name string, parentID ShelfID, sortOrder int, pinned bool) (*Shelf, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &Shelf{
		id:        id,
		name:      name,
		parentID:  parentID,
		sortOrder: sortOrder,
		pinned:    pinned,
	}, nil
}

func (s *Shelf) ID() ShelfID { return s.id }

func (s *Shelf) Name() string { return s.name }

// ParentID returns the parent shelf ID, zero for a root shelf.
func (s *Shelf) ParentID() ShelfID { return s.parentID }

func (s *Shelf) SortOrder() int { return s.sortOrder }

func (s *Shelf) IsPinned() bool { return s.pinned }

// Rename changes the shelf name, rejecting empty names.
func (s *Shelf) Rename(newName string) error {
	if strings.TrimSpace(newName) == "" {
		return ErrEmptyName
	}
	s.name = newName
	return nil
}

// MoveTo reparents the shelf. A zero ID moves it to the root. Cycle
// prevention is the caller's responsibility; the entity only records the
// parent.
func (s *Shelf) MoveTo(newParentID ShelfID) {
	s.parentID = newParentID
}

func (s *Shelf) SetSortOrder(order int) {
	s.sortOrder = order
}

func (s *Shelf) Pin() { s.pinned = true }

func (s *Shelf) Unpin() { s.pinned = false }

// TogglePin flips the pinned flag and returns the new value.
func (s *Shelf) TogglePin() bool {
	s.pinned = !s.pinned
	return s.pinned
}
