//go:build darwin && cgo

package darwin

import (
	"fmt"

	"github.com/mj1618/spaces-cli/internal/cgs"
	"github.com/mj1618/spaces-cli/internal/model"
	"github.com/mj1618/spaces-cli/internal/platform"
	"github.com/mj1618/spaces-cli/internal/spaces"
)

// DarwinReader implements platform.SpaceReader and platform.Reader for macOS.
type DarwinReader struct {
	conn cgs.ConnectionID
}

// NewReader creates a reader bound to the default window-server connection.
func NewReader() *DarwinReader {
	return &DarwinReader{conn: cgs.DefaultConnection()}
}

// ListDisplays returns the managed displays with numbered spaces. The display
// showing the active menu bar is flagged when it can be determined.
func (r *DarwinReader) ListDisplays() ([]model.Display, error) {
	raw, err := cgs.CopyManagedDisplaySpaces(r.conn)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate spaces: %w", err)
	}
	menuBar, err := cgs.CopyActiveMenuBarDisplayIdentifier(r.conn)
	if err != nil {
		menuBar = ""
	}
	return spaces.Resolve(raw, menuBar), nil
}

func (r *DarwinReader) MenuBarDisplay() (string, error) {
	id, err := cgs.CopyActiveMenuBarDisplayIdentifier(r.conn)
	if err != nil {
		return "", fmt.Errorf("failed to get menu bar display: %w", err)
	}
	return id, nil
}

// ListWindows queries CGWindowListCopyWindowInfo and filters per ListOptions.
func (r *DarwinReader) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	infos, err := cgs.CopyWindowListInfo(opts.EffectiveOption(), opts.RelativeTo)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate windows: %w", err)
	}
	windows := make([]model.Window, 0, len(infos))
	for _, info := range infos {
		windows = append(windows, platform.WindowFromInfo(info))
	}
	return platform.FilterWindows(windows, opts, frontmostPID()), nil
}
