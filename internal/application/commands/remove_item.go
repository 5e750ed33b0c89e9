package commands

import (
	"context"
	"fmt"

	"shelfbox/internal/application"
	"shelfbox/internal/domain"
	"shelfbox/internal/ports"
)

// RemoveItemResult contains the result of removing an item
type RemoveItemResult struct {
	RemovedID domain.ItemID
	Message   string
}

// RemoveItemCommand deletes an item
type RemoveItemCommand struct {
	items  ports.ItemRepository
	ItemID domain.ItemID
}

// NewRemoveItemCommand creates a new RemoveItemCommand
func NewRemoveItemCommand(items ports.ItemRepository, itemID domain.ItemID) *RemoveItemCommand {
	return &RemoveItemCommand{
		items:  items,
		ItemID: itemID,
	}
}

// Execute runs the remove item command
func (c *RemoveItemCommand) Execute(ctx context.Context) (*RemoveItemResult, error) {
	item, err := c.items.GetByID(ctx, c.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if item == nil {
		return nil, &application.NotFoundError{Entity: "item", ID: c.ItemID.String()}
	}

	if err := c.items.Delete(ctx, c.ItemID); err != nil {
		return nil, fmt.Errorf("failed to remove item: %w", err)
	}

	return &RemoveItemResult{
		RemovedID: c.ItemID,
		Message:   fmt.Sprintf("Removed %s", item.DisplayName()),
	}, nil
}

// UpdateMemoResult contains the result of updating an item memo
type UpdateMemoResult struct {
	Item    *domain.Item
	Message string
}

// UpdateMemoCommand sets or clears an item's memo. A nil memo clears it; an
// empty string is a valid stored value.
type UpdateMemoCommand struct {
	items  ports.ItemRepository
	ItemID domain.ItemID
	Memo   *string
}

// NewUpdateMemoCommand creates a new UpdateMemoCommand
func NewUpdateMemoCommand(items ports.ItemRepository, itemID domain.ItemID, memo *string) *UpdateMemoCommand {
	return &UpdateMemoCommand{
		items:  items,
		ItemID: itemID,
		Memo:   memo,
	}
}

// Execute runs the update memo command
func (c *UpdateMemoCommand) Execute(ctx context.Context) (*UpdateMemoResult, error) {
	item, err := c.items.GetByID(ctx, c.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if item == nil {
		return nil, &application.NotFoundError{Entity: "item", ID: c.ItemID.String()}
	}

	item.UpdateMemo(c.Memo)
	if err := c.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update memo: %w", err)
	}

	msg := fmt.Sprintf("Updated memo for %s", item.DisplayName())
	if c.Memo == nil {
		msg = fmt.Sprintf("Cleared memo for %s", item.DisplayName())
	}
	return &UpdateMemoResult{Item: item, Message: msg}, nil
}
