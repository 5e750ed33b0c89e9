package commands

import (
	"context"
	"fmt"

	"shelfbox/internal/application"
	"shelfbox/internal/domain"
	"shelfbox/internal/ports"
)

// PostLaunchAction tells the frontend what to do with its window after a
// successful launch.
type PostLaunchAction int

const (
	// HideWindow hides the launcher window, the normal case.
	HideWindow PostLaunchAction = iota
	// KeepWindow keeps it visible because the hotkey modifiers are still
	// held, so the user can launch more items.
	KeepWindow
)

// LaunchItemResult contains the result of launching an item
type LaunchItemResult struct {
	Item       *domain.Item
	PostAction PostLaunchAction
}

// LaunchItemCommand launches an item's target and stamps its last-accessed
// time.
type LaunchItemCommand struct {
	items    ports.ItemRepository
	launcher ports.ItemLauncher
	hotkey   ports.HotkeyHoldState
	clock    ports.Clock
	ItemID   domain.ItemID
}

// NewLaunchItemCommand creates a new LaunchItemCommand
func NewLaunchItemCommand(items ports.ItemRepository, launcher ports.ItemLauncher, hotkey ports.HotkeyHoldState, clock ports.Clock, itemID domain.ItemID) *LaunchItemCommand {
	return &LaunchItemCommand{
		items:    items,
		launcher: launcher,
		hotkey:   hotkey,
		clock:    clock,
		ItemID:   itemID,
	}
}

// Execute runs the launch item command
func (c *LaunchItemCommand) Execute(ctx context.Context) (*LaunchItemResult, error) {
	item, err := c.items.GetByID(ctx, c.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if item == nil {
		return nil, &application.NotFoundError{Entity: "item", ID: c.ItemID.String()}
	}

	ok, err := c.launcher.Launch(ctx, item)
	if err != nil || !ok {
		return nil, &application.LaunchError{Target: item.Target()}
	}

	item.MarkAccessed(c.clock.Now())
	if err := c.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to record access time: %w", err)
	}

	action := HideWindow
	if c.hotkey.IsHotkeyHeld() {
		action = KeepWindow
	}
	return &LaunchItemResult{Item: item, PostAction: action}, nil
}

// OpenParentFolderResult contains the result of revealing an item's folder
type OpenParentFolderResult struct {
	Item *domain.Item
}

// OpenParentFolderCommand reveals the folder containing an item's target.
// URL items are not supported.
type OpenParentFolderCommand struct {
	items    ports.ItemRepository
	launcher ports.ItemLauncher
	ItemID   domain.ItemID
}

// NewOpenParentFolderCommand creates a new OpenParentFolderCommand
func NewOpenParentFolderCommand(items ports.ItemRepository, launcher ports.ItemLauncher, itemID domain.ItemID) *OpenParentFolderCommand {
	return &OpenParentFolderCommand{
		items:    items,
		launcher: launcher,
		ItemID:   itemID,
	}
}

// Execute runs the open parent folder command
func (c *OpenParentFolderCommand) Execute(ctx context.Context) (*OpenParentFolderResult, error) {
	item, err := c.items.GetByID(ctx, c.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if item == nil {
		return nil, &application.NotFoundError{Entity: "item", ID: c.ItemID.String()}
	}

	if item.Type() == domain.ItemTypeURL {
		return nil, fmt.Errorf("%w: URL items have no parent folder", application.ErrNotSupported)
	}

	ok, err := c.launcher.OpenParentFolder(ctx, item)
	if err != nil || !ok {
		return nil, &application.LaunchError{Target: item.Target()}
	}
	return &OpenParentFolderResult{Item: item}, nil
}
