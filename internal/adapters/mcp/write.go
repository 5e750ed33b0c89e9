package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"shelfbox/internal/application/commands"
	"shelfbox/internal/domain"
)

// RegisterWriteTools adds all mutating shelf tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, app *commands.App) {
	s.AddTool(createShelfTool(), createShelfHandler(app))
	s.AddTool(addItemTool(), addItemHandler(app))
	s.AddTool(removeItemTool(), removeItemHandler(app))
	s.AddTool(moveItemTool(), moveItemHandler(app))
	s.AddTool(updateMemoTool(), updateMemoHandler(app))
}

// --- create_shelf ---

func createShelfTool() mcp.Tool {
	return mcp.NewTool("create_shelf",
		mcp.WithDescription("Create a shelf, optionally under a parent shelf."),
		mcp.WithString("name",
			mcp.Description("Shelf name"),
			mcp.Required(),
		),
		mcp.WithString("parent_id",
			mcp.Description("Parent shelf UUID. Omit to create a root shelf."),
		),
	)
}

func createShelfHandler(app *commands.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")

		var parentID domain.ShelfID
		if raw := req.GetString("parent_id", ""); raw != "" {
			var err error
			parentID, err = domain.ParseShelfID(raw)
			if err != nil {
				return toolError(fmt.Errorf("invalid parent_id: %w", err))
			}
		}

		result, err := app.CreateShelf(name, parentID).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s (%s)", result.Message, result.Shelf.ID())), nil
	}
}

// --- add_item ---

func addItemTool() mcp.Tool {
	return mcp.NewTool("add_item",
		mcp.WithDescription("Add a file, folder, or URL item to a shelf."),
		mcp.WithString("shelf_id",
			mcp.Description("Shelf UUID"),
			mcp.Required(),
		),
		mcp.WithString("type",
			mcp.Description("Item type: file, folder, or url"),
			mcp.Required(),
		),
		mcp.WithString("target",
			mcp.Description("File path, folder path, or URL"),
			mcp.Required(),
		),
		mcp.WithString("display_name",
			mcp.Description("Display name for the item"),
			mcp.Required(),
		),
		mcp.WithString("memo",
			mcp.Description("Optional memo text"),
		),
	)
}

func addItemHandler(app *commands.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		shelfID, err := domain.ParseShelfID(req.GetString("shelf_id", ""))
		if err != nil {
			return toolError(fmt.Errorf("invalid shelf_id: %w", err))
		}
		itemType, err := domain.ParseItemType(req.GetString("type", ""))
		if err != nil {
			return toolError(err)
		}

		var memo *string
		if raw := req.GetString("memo", ""); raw != "" {
			memo = &raw
		}

		result, err := app.AddItem(shelfID, itemType, req.GetString("target", ""), req.GetString("display_name", ""), memo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s (%s)", result.Message, result.Item.ID())), nil
	}
}

// --- remove_item ---

func removeItemTool() mcp.Tool {
	return mcp.NewTool("remove_item",
		mcp.WithDescription("Remove an item from its shelf."),
		mcp.WithString("item_id",
			mcp.Description("Item UUID"),
			mcp.Required(),
		),
	)
}

func removeItemHandler(app *commands.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		itemID, err := domain.ParseItemID(req.GetString("item_id", ""))
		if err != nil {
			return toolError(fmt.Errorf("invalid item_id: %w", err))
		}

		result, err := app.RemoveItem(itemID).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- move_item ---

func moveItemTool() mcp.Tool {
	return mcp.NewTool("move_item",
		mcp.WithDescription("Move an item to a different shelf."),
		mcp.WithString("item_id",
			mcp.Description("Item UUID"),
			mcp.Required(),
		),
		mcp.WithString("shelf_id",
			mcp.Description("Destination shelf UUID"),
			mcp.Required(),
		),
	)
}

func moveItemHandler(app *commands.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		itemID, err := domain.ParseItemID(req.GetString("item_id", ""))
		if err != nil {
			return toolError(fmt.Errorf("invalid item_id: %w", err))
		}
		shelfID, err := domain.ParseShelfID(req.GetString("shelf_id", ""))
		if err != nil {
			return toolError(fmt.Errorf("invalid shelf_id: %w", err))
		}

		result, err := app.MoveItem(itemID, shelfID).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- update_memo ---

func updateMemoTool() mcp.Tool {
	return mcp.NewTool("update_memo",
		mcp.WithDescription("Set or clear an item's memo."),
		mcp.WithString("item_id",
			mcp.Description("Item UUID"),
			mcp.Required(),
		),
		mcp.WithString("memo",
			mcp.Description("Memo text. Omit or pass empty to clear."),
		),
	)
}

func updateMemoHandler(app *commands.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		itemID, err := domain.ParseItemID(req.GetString("item_id", ""))
		if err != nil {
			return toolError(fmt.Errorf("invalid item_id: %w", err))
		}

		var memo *string
		if raw := req.GetString("memo", ""); raw != "" {
			memo = &raw
		}

		result, err := app.UpdateMemo(itemID, memo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
