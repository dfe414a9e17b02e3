package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mj1618/spaces-cli/internal/model"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "NiceUtil", "workspaces.json"))
}

func TestStore_EmptyWhenMissing(t *testing.T) {
	s := newTestStore(t)
	all, err := s.List()
	require.NoError(t, err)
	require.NotNil(t, all)
	require.Empty(t, all)
}

func TestStore_EmptyWhenCorrupt(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0755))
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0644))

	all, err := s.List()
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestStore_AddGetDelete(t *testing.T) {
	s := newTestStore(t)
	dev := model.NewWorkspace("Dev", []model.WorkspaceApp{{AppPath: "file:///Applications/Safari.app/", SpaceNumber: 2}})
	require.NoError(t, s.Add(dev))
	require.NoError(t, s.Add(model.NewWorkspace("Mail", nil)))

	all, err := s.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "Dev", all[0].Name)
	require.Equal(t, "Mail", all[1].Name)

	byName, err := s.Get("dev")
	require.NoError(t, err)
	require.True(t, byName.Equal(dev))
	require.Equal(t, dev.Apps, byName.Apps)

	byID, err := s.Get(dev.ID.String())
	require.NoError(t, err)
	require.Equal(t, "Dev", byID.Name)

	removed, err := s.Delete(dev.ID.String())
	require.NoError(t, err)
	require.Equal(t, dev.ID, removed.ID)

	_, err = s.Get("Dev")
	require.True(t, errors.Is(err, ErrNotFound))

	_, err = s.Delete("Dev")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_AddRejectsInvalid(t *testing.T) {
	s := newTestStore(t)
	require.Error(t, s.Add(model.NewWorkspace("   ", nil)))

	require.NoError(t, s.Add(model.NewWorkspace("Dev", nil)))
	require.Error(t, s.Add(model.NewWorkspace("DEV", nil)), "names are unique case-insensitively")

	_, err := os.Stat(s.Path())
	require.NoError(t, err, "store file should exist after a successful add")
}

func TestStore_ReadsOriginalFormat(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0755))
	data := `[{"id":"6F9619FF-8B86-D011-B42D-00C04FC964FF","name":"Writing","apps":[{"appPath":"file:\/\/\/Applications\/Pages.app\/","spaceNumber":3}]}]`
	require.NoError(t, os.WriteFile(s.Path(), []byte(data), 0644))

	ws, err := s.Get("6f9619ff-8b86-d011-b42d-00c04fc964ff")
	require.NoError(t, err)
	require.Equal(t, "Writing", ws.Name)
	require.Len(t, ws.Apps, 1)
	require.Equal(t, "file:///Applications/Pages.app/", ws.Apps[0].AppPath)
	require.Equal(t, 3, ws.Apps[0].SpaceNumber)
}

func TestStore_Shortcuts(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add(model.NewWorkspace("Dev", nil)))
	require.NoError(t, s.Add(model.NewWorkspace("Mail", nil)))

	ws, err := s.SetShortcut("Dev", "Ctrl+Opt+1")
	require.NoError(t, err)
	require.Equal(t, "ctrl+opt+1", ws.Shortcut)

	_, err = s.SetShortcut("Mail", "ctrl+opt+1")
	require.Error(t, err, "a shortcut belongs to one workspace")

	_, err = s.SetShortcut("Mail", "opt")
	require.Error(t, err)

	_, err = s.SetShortcut("Nope", "ctrl+2")
	require.True(t, errors.Is(err, ErrNotFound))

	ws, err = s.RemoveShortcut("Dev")
	require.NoError(t, err)
	require.Empty(t, ws.Shortcut)

	stored, err := s.Get("Dev")
	require.NoError(t, err)
	require.Empty(t, stored.Shortcut)
}

func TestValidateShortcut(t *testing.T) {
	valid := []string{"ctrl+1", "cmd+shift+w", "ctrl+opt+cmd+space"}
	for _, c := range valid {
		require.NoError(t, ValidateShortcut(c), c)
	}
	invalid := []string{"", "1", "ctrl+", "hyper+1", "ctrl+shift"}
	for _, c := range invalid {
		require.Error(t, ValidateShortcut(c), c)
	}
}

func TestStore_AddRejectsDuplicateID(t *testing.T) {
	s := newTestStore(t)
	dev := model.NewWorkspace("Dev", nil)
	require.NoError(t, s.Add(dev))

	clone := dev
	clone.Name = "Dev copy"
	err := s.Add(clone)
	require.Error(t, err)
	require.Contains(t, err.Error(), dev.ID.String())

	all, err := s.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
}
