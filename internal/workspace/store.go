// Package workspace persists named workspaces and captures or relaunches the
// applications they contain.
package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mj1618/spaces-cli/internal/model"
)

// ErrNotFound is returned when no workspace matches a name or ID.
var ErrNotFound = errors.New("workspace not found")

// Store is a JSON file holding every saved workspace, in save order.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore returns a store backed by the file at path. The file and its
// directory are created on first write.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// List returns all saved workspaces. A missing or unreadable file yields an
// empty list.
func (s *Store) List() ([]model.Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

// Get finds a workspace by ID or by case-insensitive name.
func (s *Store) Get(ref string) (model.Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.load()
	i := find(all, ref)
	if i < 0 {
		return model.Workspace{}, fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	return all[i], nil
}

// Add appends ws. The name must be non-empty and unique.
func (s *Store) Add(ws model.Workspace) error {
	ws.Name = strings.TrimSpace(ws.Name)
	if err := ValidateName(ws.Name); err != nil {
		return err
	}
	if ws.ID == uuid.Nil {
		ws.ID = uuid.New()
	}
	if ws.Apps == nil {
		ws.Apps = []model.WorkspaceApp{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.load()
	for _, existing := range all {
		if strings.EqualFold(existing.Name, ws.Name) {
			return fmt.Errorf("workspace %q already exists", ws.Name)
		}
		if existing.Equal(ws) {
			return fmt.Errorf("workspace ID %s already exists", ws.ID)
		}
	}
	return s.write(append(all, ws))
}

// Delete removes the workspace matching ref and returns it.
func (s *Store) Delete(ref string) (model.Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.load()
	i := find(all, ref)
	if i < 0 {
		return model.Workspace{}, fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	removed := all[i]
	all = append(all[:i], all[i+1:]...)
	if err := s.write(all); err != nil {
		return model.Workspace{}, err
	}
	return removed, nil
}

// SetShortcut records a key combination for the workspace. An empty combo
// removes it.
func (s *Store) SetShortcut(ref, combo string) (model.Workspace, error) {
	combo = strings.ToLower(strings.TrimSpace(combo))
	if combo != "" {
		if err := ValidateShortcut(combo); err != nil {
			return model.Workspace{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.load()
	i := find(all, ref)
	if i < 0 {
		return model.Workspace{}, fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	if combo != "" {
		for j, other := range all {
			if j != i && other.Shortcut == combo {
				return model.Workspace{}, fmt.Errorf("shortcut %q is already assigned to workspace %q", combo, other.Name)
			}
		}
	}
	all[i].Shortcut = combo
	if err := s.write(all); err != nil {
		return model.Workspace{}, err
	}
	return all[i], nil
}

// RemoveShortcut clears the workspace's key combination.
func (s *Store) RemoveShortcut(ref string) (model.Workspace, error) {
	return s.SetShortcut(ref, "")
}

// ValidateName checks a workspace name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("workspace name is required")
	}
	return nil
}

var shortcutModifiers = map[string]bool{
	"cmd": true, "ctrl": true, "opt": true, "alt": true, "shift": true, "fn": true,
}

// ValidateShortcut checks a "mod+mod+key" combination: at least one modifier
// followed by a single non-modifier key.
func ValidateShortcut(combo string) error {
	parts := strings.Split(strings.ToLower(combo), "+")
	if len(parts) < 2 {
		return fmt.Errorf("invalid shortcut %q: expected modifier+key (e.g. ctrl+opt+1)", combo)
	}
	for _, p := range parts[:len(parts)-1] {
		if !shortcutModifiers[p] {
			return fmt.Errorf("invalid shortcut %q: unknown modifier %q", combo, p)
		}
	}
	key := parts[len(parts)-1]
	if key == "" || shortcutModifiers[key] {
		return fmt.Errorf("invalid shortcut %q: missing key", combo)
	}
	return nil
}

func find(all []model.Workspace, ref string) int {
	ref = strings.TrimSpace(ref)
	if id, err := uuid.Parse(ref); err == nil {
		for i, ws := range all {
			if ws.ID == id {
				return i
			}
		}
	}
	for i, ws := range all {
		if strings.EqualFold(ws.Name, ref) {
			return i
		}
	}
	return -1
}

// load reads the file; the caller holds s.mu.
func (s *Store) load() []model.Workspace {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []model.Workspace{}
	}
	var all []model.Workspace
	if err := json.Unmarshal(data, &all); err != nil || all == nil {
		return []model.Workspace{}
	}
	return all
}

// write replaces the file atomically; the caller holds s.mu.
func (s *Store) write(all []model.Workspace) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create workspace directory: %w", err)
	}
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode workspaces: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".workspaces-*.json")
	if err != nil {
		return fmt.Errorf("failed to write workspaces: %w", err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write workspaces: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write workspaces: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write workspaces: %w", err)
	}
	return nil
}
