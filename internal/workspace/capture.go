package workspace

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/mj1618/spaces-cli/internal/model"
	"github.com/mj1618/spaces-cli/internal/platform"
	"github.com/mj1618/spaces-cli/internal/spaces"
)

// ErrNoCurrentSpace is returned when the active space cannot be resolved.
var ErrNoCurrentSpace = errors.New("unable to determine the current space")

// ErrNoApps is returned when a capture finds nothing to save.
var ErrNoApps = errors.New("no apps with visible windows on the current space")

// CaptureOptions tunes which applications count as "on the current space".
type CaptureOptions struct {
	MinWidth       int
	MinHeight      int
	ExcludeBundles []string

	// AllRunningFallback saves every regular running app when no app owns a
	// visible window.
	AllRunningFallback bool
}

// Capturer collects the applications on the current space.
type Capturer struct {
	Spaces  platform.SpaceReader
	Windows platform.Reader
	Apps    platform.AppLister
}

// NewCapturer builds a Capturer from a platform provider.
func NewCapturer(p *platform.Provider) *Capturer {
	return &Capturer{Spaces: p.SpaceReader, Windows: p.Reader, Apps: p.AppLister}
}

// AppsOnCurrentSpace returns running apps that own at least one on-screen,
// layer 0 window larger than the minimum size. The window list only covers
// the spaces currently shown, so that is the set of apps on the current space.
func (c *Capturer) AppsOnCurrentSpace(ctx context.Context, opts CaptureOptions) ([]model.App, error) {
	running, err := c.Apps.RunningApps()
	if err != nil {
		return nil, err
	}
	running = excludeBundles(running, opts.ExcludeBundles)

	windows, err := c.Windows.ListWindows(platform.ListOptions{})
	if err != nil {
		return nil, err
	}

	visible := make(map[int]bool)
	for _, w := range windows {
		if w.Layer == 0 && w.Width() > opts.MinWidth && w.Height() > opts.MinHeight {
			visible[w.PID] = true
		}
	}

	var out []model.App
	for _, app := range running {
		if visible[app.PID] {
			logger.Debugf(ctx, "found app with visible windows: %s", app.Name)
			out = append(out, app)
		}
	}
	logger.Debugf(ctx, "found %d apps with visible windows on current space", len(out))

	if len(out) == 0 {
		if opts.AllRunningFallback && len(running) > 0 {
			logger.Infof(ctx, "no windows detected on this space; using all %d running apps", len(running))
			return running, nil
		}
		return nil, ErrNoApps
	}
	return out, nil
}

// CurrentSpaceNumber returns the 1-based number of the active space.
func (c *Capturer) CurrentSpaceNumber() (int, error) {
	displays, err := c.Spaces.ListDisplays()
	if err != nil {
		return 0, err
	}
	pos, ok := spaces.Current(displays)
	if !ok {
		return 0, ErrNoCurrentSpace
	}
	return pos.Number, nil
}

// Save captures the apps on the current space and stores them under name.
func Save(ctx context.Context, store *Store, c *Capturer, name string, opts CaptureOptions) (model.Workspace, error) {
	if err := ValidateName(name); err != nil {
		return model.Workspace{}, err
	}
	spaceNumber, err := c.CurrentSpaceNumber()
	if err != nil {
		return model.Workspace{}, err
	}
	logger.Debugf(ctx, "saving workspace %q from space %d", name, spaceNumber)

	apps, err := c.AppsOnCurrentSpace(ctx, opts)
	if err != nil {
		return model.Workspace{}, err
	}

	ws := model.NewWorkspace(strings.TrimSpace(name), Entries(apps, spaceNumber))
	if err := store.Add(ws); err != nil {
		return model.Workspace{}, err
	}
	logger.Infof(ctx, "saved workspace %q with %d apps", ws.Name, len(ws.Apps))
	return ws, nil
}

// Entries records each app's bundle as a file URL on the given space.
func Entries(apps []model.App, spaceNumber int) []model.WorkspaceApp {
	entries := make([]model.WorkspaceApp, 0, len(apps))
	for _, app := range apps {
		entries = append(entries, model.WorkspaceApp{AppPath: AppURL(app.Path), SpaceNumber: spaceNumber})
	}
	return entries
}

// AppURL converts a bundle path to a directory file URL, e.g.
// "file:///Applications/Safari.app/".
func AppURL(path string) string {
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return (&url.URL{Scheme: "file", Path: path}).String()
}

// AppPath converts a stored app path (file URL or plain path) back to a
// filesystem path.
func AppPath(stored string) (string, error) {
	stored = strings.TrimSpace(stored)
	if stored == "" {
		return "", fmt.Errorf("empty app path")
	}
	if !strings.Contains(stored, "://") {
		return stored, nil
	}
	u, err := url.Parse(stored)
	if err != nil {
		return "", fmt.Errorf("invalid app URL %q: %w", stored, err)
	}
	if u.Scheme != "file" || u.Path == "" {
		return "", fmt.Errorf("invalid app URL %q: expected a file URL", stored)
	}
	return strings.TrimSuffix(u.Path, "/"), nil
}

func excludeBundles(apps []model.App, patterns []string) []model.App {
	out := make([]model.App, 0, len(apps))
	for _, app := range apps {
		excluded := false
		for _, p := range patterns {
			if p != "" && strings.Contains(app.BundleID, p) {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, app)
		}
	}
	return out
}
