package system

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"

	"shelfbox/internal/domain"
	"shelfbox/internal/ports"
)

// Launcher implements ports.ItemLauncher by handing targets to the
// platform's opener.
type Launcher struct{}

var _ ports.ItemLauncher = Launcher{}

// NewLauncher creates the exec-based launcher
func NewLauncher() Launcher {
	return Launcher{}
}

// Launch opens the item's target with the default application (or browser
// for URLs).
func (l Launcher) Launch(ctx context.Context, item *domain.Item) (bool, error) {
	cmd, err := openerCommand(ctx, item.Target())
	if err != nil {
		return false, err
	}
	if err := cmd.Run(); err != nil {
		return false, nil
	}
	return true, nil
}

// OpenParentFolder reveals the folder containing the item's target.
func (l Launcher) OpenParentFolder(ctx context.Context, item *domain.Item) (bool, error) {
	parent := item.Target()
	if item.Type() == domain.ItemTypeFile {
		parent = filepath.Dir(parent)
	}
	cmd, err := openerCommand(ctx, parent)
	if err != nil {
		return false, err
	}
	if err := cmd.Run(); err != nil {
		return false, nil
	}
	return true, nil
}

// openerCommand picks the platform opener the way an editor would be
// resolved: a fixed name per OS, verified on PATH first.
func openerCommand(ctx context.Context, target string) (*exec.Cmd, error) {
	var name string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		name = "open"
		args = []string{target}
	case "windows":
		name = "cmd"
		args = []string{"/c", "start", "", target}
	default:
		name = "xdg-open"
		args = []string{target}
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return nil, err
	}
	return exec.CommandContext(ctx, path, args...), nil
}
