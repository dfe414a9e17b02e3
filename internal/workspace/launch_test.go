package workspace

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mj1618/spaces-cli/internal/model"
	"github.com/stretchr/testify/require"
)

type fakeLauncher struct {
	fail     map[string]bool
	launched []string
}

func (f *fakeLauncher) Launch(_ context.Context, path string) error {
	if f.fail[path] {
		return errors.New("LSOpenURLsWithRole() failed with error -10810")
	}
	f.launched = append(f.launched, path)
	return nil
}

func TestLaunch_AllSucceed(t *testing.T) {
	l := &fakeLauncher{}
	ws := model.NewWorkspace("Dev", []model.WorkspaceApp{
		{AppPath: "file:///Applications/Safari.app/", SpaceNumber: 1},
		{AppPath: "/Applications/Mail.app", SpaceNumber: 1},
	})

	res, err := Launch(testContext(), l, ws)
	require.NoError(t, err)
	require.Equal(t, []string{"/Applications/Safari.app", "/Applications/Mail.app"}, l.launched)
	require.Equal(t, []string{"Safari.app", "Mail.app"}, res.Launched)
	require.Empty(t, res.Failed)
	require.Equal(t, "Dev", res.Workspace)
}

func TestLaunch_ContinuesPastFailures(t *testing.T) {
	l := &fakeLauncher{fail: map[string]bool{"/Applications/Broken.app": true}}
	ws := model.NewWorkspace("Mixed", []model.WorkspaceApp{
		{AppPath: "file:///Applications/Broken.app/"},
		{AppPath: "https://example.com/"},
		{AppPath: "file:///Applications/Notes.app/"},
	})

	res, err := Launch(testContext(), l, ws)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "2 errors occurred"), err.Error())
	require.Equal(t, []string{"Notes.app"}, res.Launched)
	require.Equal(t, []string{"Broken.app", "https://example.com/"}, res.Failed)
}

func TestLaunch_EmptyWorkspace(t *testing.T) {
	res, err := Launch(testContext(), &fakeLauncher{}, model.NewWorkspace("Nothing", nil))
	require.NoError(t, err)
	require.NotNil(t, res.Launched)
	require.Empty(t, res.Launched)
}
