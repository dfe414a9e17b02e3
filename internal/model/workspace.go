package model

import "github.com/google/uuid"

// WorkspaceApp is one application recorded in a workspace.
type WorkspaceApp struct {
	AppPath     string `yaml:"app_path"     json:"appPath"`
	SpaceNumber int    `yaml:"space_number" json:"spaceNumber"`
}

// Workspace is a named set of applications that can be relaunched together.
type Workspace struct {
	ID       uuid.UUID      `yaml:"id"                 json:"id"`
	Name     string         `yaml:"name"               json:"name"`
	Apps     []WorkspaceApp `yaml:"apps"               json:"apps"`
	Shortcut string         `yaml:"shortcut,omitempty" json:"shortcut,omitempty"`
}

// NewWorkspace creates a workspace with a fresh ID.
func NewWorkspace(name string, apps []WorkspaceApp) Workspace {
	if apps == nil {
		apps = []WorkspaceApp{}
	}
	return Workspace{ID: uuid.New(), Name: name, Apps: apps}
}

// Equal reports whether two workspaces are the same workspace (same ID).
func (w Workspace) Equal(other Workspace) bool {
	return w.ID == other.ID
}
