package workspace

import (
	"context"
	"errors"
	"io"
	"path"
	"testing"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/mj1618/spaces-cli/internal/cgs"
	"github.com/mj1618/spaces-cli/internal/logging"
	"github.com/mj1618/spaces-cli/internal/model"
	"github.com/mj1618/spaces-cli/internal/platform"
	"github.com/mj1618/spaces-cli/internal/spaces"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return logging.Install(context.Background(), logging.New(io.Discard, logger.LevelTrace))
}

type fakeSpaces struct {
	displays []model.Display
	err      error
}

func (f fakeSpaces) ListDisplays() ([]model.Display, error) { return f.displays, f.err }

func (f fakeSpaces) MenuBarDisplay() (string, error) { return "Main", nil }

type fakeWindows struct {
	windows []model.Window
	lastOpt platform.ListOptions
}

func (f *fakeWindows) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	f.lastOpt = opts
	return f.windows, nil
}

type fakeApps []model.App

func (f fakeApps) RunningApps() ([]model.App, error) { return f, nil }

func onSpace(number int) fakeSpaces {
	raw := cgs.ManagedDisplay{DisplayIdentifier: "Main", CurrentSpace: &cgs.Space{ManagedSpaceID: int64(number)}}
	for i := 1; i <= 3; i++ {
		raw.Spaces = append(raw.Spaces, cgs.Space{ManagedSpaceID: int64(i)})
	}
	return fakeSpaces{displays: spaces.Resolve([]cgs.ManagedDisplay{raw}, "Main")}
}

var runningApps = fakeApps{
	{Name: "Safari", BundleID: "com.apple.Safari", Path: "/Applications/Safari.app", PID: 10},
	{Name: "Finder", BundleID: "com.apple.finder", Path: "/System/Library/CoreServices/Finder.app", PID: 11},
	{Name: "Notes", BundleID: "com.apple.Notes", Path: "/System/Applications/Notes.app", PID: 12},
	{Name: "Visual Studio Code", BundleID: "com.microsoft.VSCode", Path: "/Applications/Visual Studio Code.app", PID: 13},
}

var defaultCapture = CaptureOptions{MinWidth: 50, MinHeight: 50, ExcludeBundles: []string{"com.apple.finder", "spaces-cli"}}

func TestAppsOnCurrentSpace(t *testing.T) {
	windows := &fakeWindows{windows: []model.Window{
		{PID: 10, Bounds: [4]int{0, 0, 800, 600}},
		{PID: 11, Bounds: [4]int{0, 0, 800, 600}},           // excluded bundle
		{PID: 12, Bounds: [4]int{0, 0, 40, 40}},             // too small
		{PID: 13, Layer: 3, Bounds: [4]int{0, 0, 800, 600}}, // not a normal window
		{PID: 99, Bounds: [4]int{0, 0, 800, 600}},           // not a regular app
	}}
	c := &Capturer{Spaces: onSpace(2), Windows: windows, Apps: runningApps}

	apps, err := c.AppsOnCurrentSpace(testContext(), defaultCapture)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.Equal(t, "Safari", apps[0].Name)
	require.Equal(t, cgs.WindowListOption(0), windows.lastOpt.Option, "capture uses the on-screen default")
}

func TestAppsOnCurrentSpace_Fallback(t *testing.T) {
	c := &Capturer{Spaces: onSpace(1), Windows: &fakeWindows{}, Apps: runningApps}

	_, err := c.AppsOnCurrentSpace(testContext(), defaultCapture)
	require.True(t, errors.Is(err, ErrNoApps))

	opts := defaultCapture
	opts.AllRunningFallback = true
	apps, err := c.AppsOnCurrentSpace(testContext(), opts)
	require.NoError(t, err)
	require.Len(t, apps, 3, "finder stays excluded in the fallback")
}

func TestSave(t *testing.T) {
	store := newTestStore(t)
	windows := &fakeWindows{windows: []model.Window{
		{PID: 10, Bounds: [4]int{0, 0, 800, 600}},
		{PID: 13, Bounds: [4]int{0, 0, 1200, 900}},
	}}
	c := &Capturer{Spaces: onSpace(3), Windows: windows, Apps: runningApps}

	ws, err := Save(testContext(), store, c, " Coding ", defaultCapture)
	require.NoError(t, err)
	require.Equal(t, "Coding", ws.Name)
	require.Equal(t, []model.WorkspaceApp{
		{AppPath: "file:///Applications/Safari.app/", SpaceNumber: 3},
		{AppPath: "file:///Applications/Visual%20Studio%20Code.app/", SpaceNumber: 3},
	}, ws.Apps)

	stored, err := store.Get("coding")
	require.NoError(t, err)
	require.True(t, stored.Equal(ws))
}

func TestSave_NoCurrentSpace(t *testing.T) {
	store := newTestStore(t)
	c := &Capturer{Spaces: fakeSpaces{}, Windows: &fakeWindows{}, Apps: runningApps}
	_, err := Save(testContext(), store, c, "Empty", defaultCapture)
	require.True(t, errors.Is(err, ErrNoCurrentSpace))

	all, err := store.List()
	require.NoError(t, err)
	require.Empty(t, all, "nothing is stored on failure")
}

func TestSave_RequiresName(t *testing.T) {
	c := &Capturer{Spaces: onSpace(1), Windows: &fakeWindows{}, Apps: runningApps}
	_, err := Save(testContext(), newTestStore(t), c, "", defaultCapture)
	require.Error(t, err)
}

func TestAppURLRoundTrip(t *testing.T) {
	tests := []struct {
		path string
		url  string
	}{
		{"/Applications/Safari.app", "file:///Applications/Safari.app/"},
		{"/Applications/Visual Studio Code.app/", "file:///Applications/Visual%20Studio%20Code.app/"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.url, AppURL(tt.path))
		got, err := AppPath(tt.url)
		require.NoError(t, err)
		require.Equal(t, "/Applications/"+path.Base(tt.path), got)
	}
}

func TestAppPath(t *testing.T) {
	p, err := AppPath("/Applications/Mail.app")
	require.NoError(t, err)
	require.Equal(t, "/Applications/Mail.app", p)

	for _, bad := range []string{"", "https://example.com/App.app", "file://"} {
		_, err := AppPath(bad)
		require.Error(t, err, bad)
	}
}
