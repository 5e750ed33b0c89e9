package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ItemType classifies what an item's target points at.
type ItemType int

const (
	ItemTypeFile ItemType = iota
	ItemTypeFolder
	ItemTypeURL
)

var (
	// ErrEmptyTarget is returned when an item target is empty or whitespace.
	ErrEmptyTarget = errors.New("item target cannot be empty")
	// ErrEmptyDisplayName is returned when an item display name is empty or whitespace.
	ErrEmptyDisplayName = errors.New("item display name cannot be empty")
)

func (t ItemType) String() string {
	switch t {
	case ItemTypeFile:
		return "file"
	case ItemTypeFolder:
		return "folder"
	case ItemTypeURL:
		return "url"
	default:
		return fmt.Sprintf("ItemType(%d)", int(t))
	}
}

// Valid reports whether t is one of the defined types. Used to guard values
// coming from serialized documents.
func (t ItemType) Valid() bool {
	return t >= ItemTypeFile && t <= ItemTypeURL
}

// ParseItemType parses a type name ("file", "folder", "url"), case-insensitive.
func ParseItemType(s string) (ItemType, error) {
	switch strings.ToLower(s) {
	case "file":
		return ItemTypeFile, nil
	case "folder":
		return ItemTypeFolder, nil
	case "url":
		return ItemTypeURL, nil
	default:
		return 0, fmt.Errorf("unknown item type %q", s)
	}
}

// Item is a reference to a file, folder, or URL, owned by exactly one shelf.
type Item struct {
	id             ItemID
	shelfID        ShelfID
	itemType       ItemType
	target         string
	displayName    string
	memo           *string
	sortOrder      int
	createdAt      time.Time
	lastAccessedAt *time.Time
}

// NewItem constructs an item, validating target and display name.
func NewItem(id ItemID, shelfID ShelfID, itemType ItemType, target, displayName string, memo *string, sortOrder int, createdAt time.Time, lastAccessedAt *time.Time) (*Item, error) {
	if strings.TrimSpace(target) == "" {
		return nil, ErrEmptyTarget
	}
	if strings.TrimSpace(displayName) == "" {
		return nil, ErrEmptyDisplayName
	}
	return &Item{
		id:             id,
		shelfID:        shelfID,
		itemType:       itemType,
		target:         target,
		displayName:    displayName,
		memo:           memo,
		sortOrder:      sortOrder,
		createdAt:      createdAt,
		lastAccessedAt: lastAccessedAt,
	}, nil
}

func (i *Item) ID() ItemID { return i.id }

func (i *Item) ShelfID() ShelfID { return i.shelfID }

func (i *Item) Type() ItemType { return i.itemType }

func (i *Item) Target() string { return i.target }

func (i *Item) DisplayName() string { return i.displayName }

// Memo returns the item memo, nil when unset. An empty string is a valid
// value distinct from a cleared memo.
func (i *Item) Memo() *string { return i.memo }

func (i *Item) SortOrder() int { return i.sortOrder }

func (i *Item) CreatedAt() time.Time { return i.createdAt }

// LastAccessedAt returns the last launch timestamp, nil if never launched.
func (i *Item) LastAccessedAt() *time.Time { return i.lastAccessedAt }

// Rename changes the display name, rejecting empty names.
func (i *Item) Rename(newDisplayName string) error {
	if strings.TrimSpace(newDisplayName) == "" {
		return ErrEmptyDisplayName
	}
	i.displayName = newDisplayName
	return nil
}

// UpdateMemo sets the memo. nil clears it.
func (i *Item) UpdateMemo(memo *string) {
	i.memo = memo
}

// MarkAccessed records a successful launch.
func (i *Item) MarkAccessed(at time.Time) {
	t := at
	i.lastAccessedAt = &t
}

// MoveToShelf reassigns the owning shelf.
func (i *Item) MoveToShelf(newShelfID ShelfID) {
	i.shelfID = newShelfID
}

func (i *Item) SetSortOrder(order int) {
	i.sortOrder = order
}

// SameReference reports whether the item points at the same (type, target)
// pair. File and folder paths compare case-insensitively, URLs exactly.
func (i *Item) SameReference(itemType ItemType, target string) bool {
	if i.itemType != itemType {
		return false
	}
	if i.itemType == ItemTypeURL {
		return i.target == target
	}
	return strings.EqualFold(i.target, target)
}
