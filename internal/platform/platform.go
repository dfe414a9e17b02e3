package platform

import (
	"context"

	"github.com/mj1618/spaces-cli/internal/model"
)

// SpaceReader reads displays and spaces from the window server.
type SpaceReader interface {
	// ListDisplays returns every display with its numbered spaces.
	ListDisplays() ([]model.Display, error)

	// MenuBarDisplay returns the identifier of the display showing the
	// active menu bar.
	MenuBarDisplay() (string, error)
}

// Reader lists windows.
type Reader interface {
	// ListWindows returns windows selected by the list option, optionally filtered.
	ListWindows(opts ListOptions) ([]model.Window, error)
}

// AppLister lists running applications.
type AppLister interface {
	// RunningApps returns regular, fully launched applications that have a bundle.
	RunningApps() ([]model.App, error)
}

// Launcher starts applications.
type Launcher interface {
	// Launch opens the application bundle at path as a new, activated instance.
	Launch(ctx context.Context, path string) error
}
