package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"shelfbox/internal/adapters/jsondata"
	mcpadapter "shelfbox/internal/adapters/mcp"
	"shelfbox/internal/adapters/sqlite"
	"shelfbox/internal/adapters/system"
	"shelfbox/internal/application/commands"
	"shelfbox/internal/config"
)

func main() {
	dbFlag := flag.String("db", config.DBPath(), "path to the database file")
	flag.Parse()

	store, err := sqlite.Open(*dbFlag)
	if err != nil {
		log.Fatalf("shelfbox-mcp: %v", err)
	}
	defer store.Close()

	app := commands.New(
		sqlite.NewShelfRepository(store),
		sqlite.NewItemRepository(store),
		sqlite.NewSettingsRepository(store),
		system.NewClock(),
		system.NewExistenceChecker(),
		system.NewLauncher(),
		system.NewHotkeyHoldState(),
		jsondata.NewSerializer(),
	)

	mcpServer := server.NewMCPServer(
		"shelfbox-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, app)
	mcpadapter.RegisterWriteTools(mcpServer, app)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("shelfbox-mcp: %v", err)
	}
}
