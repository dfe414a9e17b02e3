package model

// App is a running regular (Dock-visible) application.
type App struct {
	Name     string `yaml:"name"                json:"name"`
	BundleID string `yaml:"bundle_id,omitempty" json:"bundle_id,omitempty"`
	Path     string `yaml:"path"                json:"path"`
	PID      int    `yaml:"pid"                 json:"pid"`
}
