//go:build darwin

package darwin

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DarwinLauncher implements platform.Launcher with the macOS `open` command.
type DarwinLauncher struct {
	openPath string
}

// NewLauncher creates a launcher using /usr/bin/open.
func NewLauncher() *DarwinLauncher {
	return &DarwinLauncher{openPath: "/usr/bin/open"}
}

// Launch opens a new instance of the application bundle at path. `open -n`
// starts a fresh instance even when the app already runs, so the app opens a
// new window on the current space, and activates it.
func (l *DarwinLauncher) Launch(ctx context.Context, path string) error {
	out, err := exec.CommandContext(ctx, l.openPath, openArgs(path)...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("open %s failed: %s (%w)", path, strings.TrimSpace(string(out)), err)
	}
	return nil
}

func openArgs(path string) []string {
	return []string{"-n", path}
}
