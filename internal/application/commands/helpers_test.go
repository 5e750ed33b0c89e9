package commands

import (
	"context"
	"testing"
	"time"

	"shelfbox/internal/adapters/memory"
	"shelfbox/internal/domain"
)

// fakeClock returns a fixed instant, advancing by a second per call so
// successive access stamps are distinguishable.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

// fakeLauncher records launches and reports the configured outcome.
type fakeLauncher struct {
	launched []string
	opened   []string
	ok       bool
	err      error
}

func newFakeLauncher() *fakeLauncher {
	return &fakeLauncher{ok: true}
}

func (l *fakeLauncher) Launch(_ context.Context, item *domain.Item) (bool, error) {
	l.launched = append(l.launched, item.Target())
	return l.ok, l.err
}

func (l *fakeLauncher) OpenParentFolder(_ context.Context, item *domain.Item) (bool, error) {
	l.opened = append(l.opened, item.Target())
	return l.ok, l.err
}

// fakeHotkey is a settable hold flag.
type fakeHotkey struct {
	held bool
}

func (h *fakeHotkey) IsHotkeyHeld() bool { return h.held }

func (h *fakeHotkey) ConfigureFromHotkeyString(string) error { return nil }

// fakeChecker treats every target in existing as present.
type fakeChecker struct {
	existing map[string]bool
}

func (c *fakeChecker) Exists(target string) bool { return c.existing[target] }

// testEnv wires the in-memory stores every command test runs against.
type testEnv struct {
	shelves *memory.ShelfRepository
	items   *memory.ItemRepository
	clock   *fakeClock
}

func newTestEnv() *testEnv {
	return &testEnv{
		shelves: memory.NewShelfRepository(),
		items:   memory.NewItemRepository(),
		clock:   newFakeClock(),
	}
}

func (e *testEnv) addShelf(t *testing.T, name string, parentID domain.ShelfID) *domain.Shelf {
	t.Helper()
	result, err := NewCreateShelfCommand(e.shelves, name, parentID).Execute(context.Background())
	if err != nil {
		t.Fatalf("creating shelf %q: %v", name, err)
	}
	return result.Shelf
}

func (e *testEnv) addItem(t *testing.T, shelfID domain.ShelfID, itemType domain.ItemType, target, name string) *domain.Item {
	t.Helper()
	result, err := NewAddItemCommand(e.items, e.shelves, e.clock, shelfID, itemType, target, name, nil).Execute(context.Background())
	if err != nil {
		t.Fatalf("adding item %q: %v", name, err)
	}
	return result.Item
}
