package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shelfbox/internal/adapters/jsondata"
	"shelfbox/internal/adapters/sqlite"
	"shelfbox/internal/adapters/system"
	"shelfbox/internal/application/commands"
	"shelfbox/internal/config"
	"shelfbox/internal/logger"
	"shelfbox/internal/ports"
)

var (
	dbPath string
	store  *sqlite.Store
	app    *commands.App
	log    *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shelfbox",
	Short: "Organize and launch file, folder, and URL references",
	Long: `shelfbox keeps references to files, folders, and URLs on named
shelves. Shelves nest into a hierarchy; items can be searched with a small
query language (box:, type:, in: prefixes) and launched with the platform
opener.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		log = logger.New(config.LogLevel(), config.PrettyLog())

		var err error
		store, err = sqlite.Open(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}

		settings := sqlite.NewSettingsRepository(store)
		hotkey := system.NewHotkeyHoldState()
		if chord, ok, err := settings.Get(cmd.Context(), ports.SettingGlobalHotkey); err == nil && ok {
			if err := hotkey.ConfigureFromHotkeyString(chord); err != nil {
				log.Warn("ignoring malformed hotkey setting", "hotkey", chord, "error", err)
			}
		}

		app = commands.New(
			sqlite.NewShelfRepository(store),
			sqlite.NewItemRepository(store),
			settings,
			system.NewClock(),
			system.NewExistenceChecker(),
			system.NewLauncher(),
			hotkey,
			jsondata.NewSerializer(),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store != nil {
			if err := store.Close(); err != nil && log != nil {
				log.Warn("failed to close database", "error", err)
			}
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.DBPath(), "path to the database file")
}

// GetApp returns the initialized application facade
func GetApp() *commands.App {
	return app
}
