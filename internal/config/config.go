package config

import (
	"os"
	"strconv"
)

const DefaultDBPath = "~/.local/share/shelfbox/shelfbox.db"

// DBPath returns the database path from the SHELFBOX_DB env var, falling
// back to DefaultDBPath.
func DBPath() string {
	return getenv("SHELFBOX_DB", DefaultDBPath)
}

// LogLevel returns the log level ("debug", "info", "warn", "error").
func LogLevel() string {
	return getenv("SHELFBOX_LOG_LEVEL", "info")
}

// PrettyLog reports whether colored dev logging is enabled instead of JSON.
func PrettyLog() bool {
	return getbool("SHELFBOX_PRETTY_LOG", true)
}

// RecentCount returns the default size of recent-item listings.
func RecentCount() int {
	return getint("SHELFBOX_RECENT_COUNT", 20)
}

func getenv(key, fallback string) string {
	if env := os.Getenv(key); env != "" {
		return env
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	env := os.Getenv(key)
	if env == "" {
		return fallback
	}
	v, err := strconv.ParseBool(env)
	if err != nil {
		return fallback
	}
	return v
}

func getint(key string, fallback int) int {
	env := os.Getenv(key)
	if env == "" {
		return fallback
	}
	v, err := strconv.Atoi(env)
	if err != nil {
		return fallback
	}
	return v
}
