package domain

import "github.com/google/uuid"

// ShelfID identifies a shelf. The zero value means "no shelf" and is used
// for the absent parent of a root shelf.
type ShelfID struct {
	value uuid.UUID
}

// NewShelfID generates a fresh shelf ID.
func NewShelfID() ShelfID {
	return ShelfID{value: uuid.New()}
}

// ParseShelfID parses a string-encoded shelf ID.
func ParseShelfID(s string) (ShelfID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ShelfID{}, err
	}
	return ShelfID{value: u}, nil
}

// IsZero reports whether the ID is the absent value.
func (id ShelfID) IsZero() bool {
	return id.value == uuid.UUID{}
}

func (id ShelfID) String() string {
	return id.value.String()
}

// ItemID identifies an item.
type ItemID struct {
	value uuid.UUID
}

// NewItemID generates a fresh item ID.
func NewItemID() ItemID {
	return ItemID{value: uuid.New()}
}

// ParseItemID parses a string-encoded item ID.
func ParseItemID(s string) (ItemID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ItemID{}, err
	}
	return ItemID{value: u}, nil
}

// IsZero reports whether the ID is the absent value.
func (id ItemID) IsZero() bool {
	return id.value == uuid.UUID{}
}

func (id ItemID) String() string {
	return id.value.String()
}
