// Package system implements the OS-facing ports: clock, target existence,
// launching, hotkey hold state, and clipboard.
package system

import (
	"time"

	"shelfbox/internal/ports"
)

// Clock implements ports.Clock with the real time
type Clock struct{}

var _ ports.Clock = Clock{}

// NewClock creates the real clock
func NewClock() Clock {
	return Clock{}
}

func (Clock) Now() time.Time {
	return time.Now().UTC()
}
