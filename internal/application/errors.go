// Package application holds the use-case layer: one command per operation,
// orchestrating entity mutation through the repository ports and returning
// typed errors for the expected failure modes.
package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure modes use cases report. Callers branch
// with errors.Is; the typed errors below carry the details.
var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("duplicate item reference")
	ErrInvalidMove  = errors.New("invalid move")
	ErrLaunchFailed = errors.New("launch failed")
	ErrNotSupported = errors.New("operation not supported")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a missing shelf or item.
type NotFoundError struct {
	Entity string // "shelf", "item", "parent shelf"
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DuplicateError reports a (type, target) collision within a shelf.
type DuplicateError struct {
	ShelfID string
	Reason  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate in shelf %s: %s", e.ShelfID, e.Reason)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// MoveError represents a move-related failure
type MoveError struct {
	SourceID string
	DestID   string
	Reason   string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("cannot move %s to %s: %s", e.SourceID, e.DestID, e.Reason)
}

func (e *MoveError) Is(target error) bool {
	return target == ErrInvalidMove
}

// LaunchError reports a failed launch of an item target.
type LaunchError struct {
	Target string
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch: %s", e.Target)
}

func (e *LaunchError) Is(target error) bool {
	return target == ErrLaunchFailed
}
