package ports

import (
	"context"
	"time"

	"shelfbox/internal/domain"
)

// Clock supplies the current time. Injected so timestamp behavior is
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

// ExistenceChecker reports whether an item target still exists. URLs always
// report existing; files and folders check the filesystem.
type ExistenceChecker interface {
	Exists(target string) bool
}

// ItemLauncher opens an item's target with the operating system.
type ItemLauncher interface {
	// Launch opens the target. A false return means the launch failed
	// without a transport-level error.
	Launch(ctx context.Context, item *domain.Item) (bool, error)
	// OpenParentFolder reveals the target's containing folder. Only
	// meaningful for file and folder items.
	OpenParentFolder(ctx context.Context, item *domain.Item) (bool, error)
}

// HotkeyHoldState exposes whether the global hotkey's modifier keys are
// currently held. Holding them lets the user launch several items without
// the window hiding in between.
type HotkeyHoldState interface {
	IsHotkeyHeld() bool
	// ConfigureFromHotkeyString parses a chord like "Ctrl+Shift+Space" and
	// records which modifiers to watch.
	ConfigureFromHotkeyString(hotkey string) error
}

// Logger is the minimal logging surface the core and adapters write to.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
