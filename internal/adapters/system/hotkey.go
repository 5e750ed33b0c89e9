package system

import (
	"fmt"
	"strings"
	"sync"

	"shelfbox/internal/ports"
)

// HotkeyHoldState implements ports.HotkeyHoldState. It parses the
// configured chord into its modifier set; the held flag itself is fed by
// the embedding frontend, since a headless process has no keyboard hook.
type HotkeyHoldState struct {
	mu        sync.RWMutex
	modifiers []string
	held      bool
}

var _ ports.HotkeyHoldState = (*HotkeyHoldState)(nil)

// NewHotkeyHoldState creates an unconfigured hold state
func NewHotkeyHoldState() *HotkeyHoldState {
	return &HotkeyHoldState{}
}

func (h *HotkeyHoldState) IsHotkeyHeld() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.held
}

// SetHeld records whether the configured modifiers are currently down.
func (h *HotkeyHoldState) SetHeld(held bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.held = held
}

// Modifiers returns the modifier keys parsed from the configured chord.
func (h *HotkeyHoldState) Modifiers() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]string(nil), h.modifiers...)
}

// ConfigureFromHotkeyString parses a chord like "Ctrl+Shift+Space". All
// parts but the last are modifiers; the chord must end in a non-modifier
// key.
func (h *HotkeyHoldState) ConfigureFromHotkeyString(hotkey string) error {
	parts := strings.Split(hotkey, "+")
	var modifiers []string
	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			return fmt.Errorf("malformed hotkey %q", hotkey)
		}
		switch strings.ToLower(p) {
		case "ctrl", "control", "shift", "alt", "win", "super", "cmd", "meta":
			modifiers = append(modifiers, strings.ToLower(p))
		}
	}
	if len(modifiers) == len(parts) {
		return fmt.Errorf("hotkey %q has no trigger key", hotkey)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.modifiers = modifiers
	return nil
}
