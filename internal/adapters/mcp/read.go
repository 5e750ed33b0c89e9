package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"shelfbox/internal/application/commands"
	"shelfbox/internal/domain"
)

// RegisterReadTools adds all read-only shelf tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, app *commands.App) {
	s.AddTool(listShelvesTool(), listShelvesHandler(app))
	s.AddTool(listItemsTool(), listItemsHandler(app))
	s.AddTool(searchTool(), searchHandler(app))
	s.AddTool(treeTool(), treeHandler(app))
	s.AddTool(recentTool(), recentHandler(app))
	s.AddTool(missingTool(), missingHandler(app))
}

// --- list_shelves ---

func listShelvesTool() mcp.Tool {
	return mcp.NewTool("list_shelves",
		mcp.WithDescription("List shelves. Without arguments lists root shelves. With a parent ID lists its children."),
		mcp.WithString("parent_id",
			mcp.Description("Parent shelf UUID to list children of. Omit to list root shelves."),
		),
	)
}

func listShelvesHandler(app *commands.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var parentID domain.ShelfID
		if raw := req.GetString("parent_id", ""); raw != "" {
			var err error
			parentID, err = domain.ParseShelfID(raw)
			if err != nil {
				return toolError(fmt.Errorf("invalid parent_id: %w", err))
			}
		}

		shelves, err := app.ListShelves(parentID).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(shelves) == 0 {
			return mcp.NewToolResultText("No shelves."), nil
		}

		var sb strings.Builder
		for _, s := range shelves {
			pin := ""
			if s.IsPinned() {
				pin = "  [pinned]"
			}
			fmt.Fprintf(&sb, "%s  %s%s\n", s.ID(), s.Name(), pin)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_items ---

func listItemsTool() mcp.Tool {
	return mcp.NewTool("list_items",
		mcp.WithDescription("List the items on a shelf, ordered by display order."),
		mcp.WithString("shelf_id",
			mcp.Description("Shelf UUID"),
			mcp.Required(),
		),
	)
}

func listItemsHandler(app *commands.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		shelfID, err := domain.ParseShelfID(req.GetString("shelf_id", ""))
		if err != nil {
			return toolError(fmt.Errorf("invalid shelf_id: %w", err))
		}

		items, err := app.ListItems(shelfID).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(items) == 0 {
			return mcp.NewToolResultText("No items."), nil
		}

		var sb strings.Builder
		for _, it := range items {
			fmt.Fprintf(&sb, "%s  [%s]  %s  %s\n", it.ID(), it.Type(), it.DisplayName(), it.Target())
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search items by free text with optional box:, type:, and in: filter prefixes."),
		mcp.WithString("query",
			mcp.Description("Search query, e.g. \"report box:Work type:file\""),
			mcp.Required(),
		),
	)
}

func searchHandler(app *commands.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := app.SearchItems(query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatItemsWithShelf(results, "No results found.")
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the shelf hierarchy as a tree with per-shelf item counts."),
	)
}

func treeHandler(app *commands.App) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		roots, err := app.BuildTree().Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(roots) == 0 {
			return mcp.NewToolResultText("No shelves."), nil
		}

		var sb strings.Builder
		for _, root := range roots {
			renderTree(&sb, root, "")
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, node *domain.TreeNode, prefix string) {
	fmt.Fprintf(sb, "%s%s (%d)  %s\n", prefix, node.Shelf.Name(), node.ItemCount, node.Shelf.ID())
	for _, child := range node.Children {
		renderTree(sb, child, prefix+"  ")
	}
}

// --- recent ---

func recentTool() mcp.Tool {
	return mcp.NewTool("recent",
		mcp.WithDescription("List recently launched items, most recent first."),
		mcp.WithNumber("count",
			mcp.Description("Maximum number of items to return"),
		),
	)
}

func recentHandler(app *commands.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		count := req.GetInt("count", commands.DefaultRecentCount)

		results, err := app.RecentItems(count).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatItemsWithShelf(results, "No recently launched items.")
	}
}

// --- missing ---

func missingTool() mcp.Tool {
	return mcp.NewTool("missing",
		mcp.WithDescription("List file and folder items whose target no longer exists on disk."),
	)
}

func missingHandler(app *commands.App) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		results, err := app.MissingItems().Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatItemsWithShelf(results, "All item targets exist.")
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatItemsWithShelf(results []commands.ItemWithShelf, empty string) (*mcp.CallToolResult, error) {
	if len(results) == 0 {
		return mcp.NewToolResultText(empty), nil
	}
	var sb strings.Builder
	for _, r := range results {
		fmt.Fprintf(&sb, "%s  [%s]  %s  (%s)  %s\n", r.Item.ID(), r.Item.Type(), r.Item.DisplayName(), r.ShelfName, r.Item.Target())
	}
	return mcp.NewToolResultText(sb.String()), nil
}
