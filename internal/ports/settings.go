package ports

import "context"

// SettingsRepository is a string key-value store for user settings.
// Get returns ("", false, nil) when the key is absent.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	GetAll(ctx context.Context) (map[string]string, error)
}

// Well-known setting keys.
const (
	SettingGlobalHotkey     = "GlobalHotkey"
	SettingWindowWidth      = "WindowWidth"
	SettingWindowHeight     = "WindowHeight"
	SettingStartMinimized   = "StartMinimized"
	SettingRecentItemsCount = "RecentItemsCount"
)
