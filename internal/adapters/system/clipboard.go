package system

import "github.com/atotto/clipboard"

// Clipboard writes text to the system clipboard.
type Clipboard struct{}

// NewClipboard creates the system clipboard writer
func NewClipboard() Clipboard {
	return Clipboard{}
}

func (Clipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}
