package commands

import (
	"shelfbox/internal/domain"
	"shelfbox/internal/ports"
	"shelfbox/internal/transfer"
)

// App bundles the ports and hands out commands bound to them. It exists for
// wiring convenience; commands never call each other through it.
type App struct {
	Shelves    ports.ShelfRepository
	Items      ports.ItemRepository
	Settings   ports.SettingsRepository
	Clock      ports.Clock
	Existence  ports.ExistenceChecker
	Launcher   ports.ItemLauncher
	Hotkey     ports.HotkeyHoldState
	Serializer ports.DataSerializer
}

// New creates an App over the given ports.
func New(shelves ports.ShelfRepository, items ports.ItemRepository, settings ports.SettingsRepository, clock ports.Clock, existence ports.ExistenceChecker, launcher ports.ItemLauncher, hotkey ports.HotkeyHoldState, serializer ports.DataSerializer) *App {
	return &App{
		Shelves:    shelves,
		Items:      items,
		Settings:   settings,
		Clock:      clock,
		Existence:  existence,
		Launcher:   launcher,
		Hotkey:     hotkey,
		Serializer: serializer,
	}
}

func (a *App) CreateShelf(name string, parentID domain.ShelfID) *CreateShelfCommand {
	return NewCreateShelfCommand(a.Shelves, name, parentID)
}

func (a *App) RenameShelf(id domain.ShelfID, newName string) *RenameShelfCommand {
	return NewRenameShelfCommand(a.Shelves, id, newName)
}

func (a *App) DeleteShelf(id domain.ShelfID) *DeleteShelfCommand {
	return NewDeleteShelfCommand(a.Shelves, a.Items, id)
}

func (a *App) MoveShelf(id, newParentID domain.ShelfID) *MoveShelfCommand {
	return NewMoveShelfCommand(a.Shelves, id, newParentID)
}

func (a *App) TogglePin(id domain.ShelfID) *TogglePinCommand {
	return NewTogglePinCommand(a.Shelves, id)
}

func (a *App) ReorderShelves(orderedIDs []domain.ShelfID) *ReorderShelvesCommand {
	return NewReorderShelvesCommand(a.Shelves, orderedIDs)
}

func (a *App) AddItem(shelfID domain.ShelfID, itemType domain.ItemType, target, displayName string, memo *string) *AddItemCommand {
	return NewAddItemCommand(a.Items, a.Shelves, a.Clock, shelfID, itemType, target, displayName, memo)
}

func (a *App) RemoveItem(id domain.ItemID) *RemoveItemCommand {
	return NewRemoveItemCommand(a.Items, id)
}

func (a *App) RenameItem(id domain.ItemID, newName string) *RenameItemCommand {
	return NewRenameItemCommand(a.Items, id, newName)
}

func (a *App) UpdateMemo(id domain.ItemID, memo *string) *UpdateMemoCommand {
	return NewUpdateMemoCommand(a.Items, id, memo)
}

func (a *App) MoveItem(id domain.ItemID, targetShelfID domain.ShelfID) *MoveItemCommand {
	return NewMoveItemCommand(a.Items, a.Shelves, id, targetShelfID)
}

func (a *App) ReorderItems(orderedIDs []domain.ItemID) *ReorderItemsCommand {
	return NewReorderItemsCommand(a.Items, orderedIDs)
}

func (a *App) RecentItems(count int) *RecentItemsCommand {
	return NewRecentItemsCommand(a.Items, a.Shelves, count)
}

func (a *App) MissingItems() *MissingItemsCommand {
	return NewMissingItemsCommand(a.Items, a.Shelves, a.Existence)
}

func (a *App) LaunchItem(id domain.ItemID) *LaunchItemCommand {
	return NewLaunchItemCommand(a.Items, a.Launcher, a.Hotkey, a.Clock, id)
}

func (a *App) OpenParentFolder(id domain.ItemID) *OpenParentFolderCommand {
	return NewOpenParentFolderCommand(a.Items, a.Launcher, id)
}

func (a *App) SearchItems(query string) *SearchItemsCommand {
	return NewSearchItemsCommand(a.Items, a.Shelves, query)
}

func (a *App) ExportData() *ExportDataCommand {
	return NewExportDataCommand(a.Shelves, a.Items, a.Clock)
}

func (a *App) ImportData(data *transfer.ExportData, replaceAll bool) *ImportDataCommand {
	return NewImportDataCommand(a.Shelves, a.Items, data, replaceAll)
}

func (a *App) ListShelves(parentID domain.ShelfID) *ListShelvesCommand {
	return NewListShelvesCommand(a.Shelves, parentID)
}

func (a *App) ListItems(shelfID domain.ShelfID) *ListItemsCommand {
	return NewListItemsCommand(a.Items, a.Shelves, shelfID)
}

func (a *App) BuildTree() *BuildTreeCommand {
	return NewBuildTreeCommand(a.Shelves, a.Items)
}
