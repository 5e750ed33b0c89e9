package system

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExistenceChecker(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	checker := NewExistenceChecker()

	tests := []struct {
		name   string
		target string
		want   bool
	}{
		{name: "existing file", target: file, want: true},
		{name: "existing directory", target: dir, want: true},
		{name: "missing file", target: filepath.Join(dir, "gone.txt"), want: false},
		{name: "http url always exists", target: "http://example.com", want: true},
		{name: "https url always exists", target: "https://example.com/page", want: true},
		{name: "empty target", target: "", want: false},
		{name: "whitespace target", target: "   ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.Exists(tt.target); got != tt.want {
				t.Errorf("Exists(%q) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}
