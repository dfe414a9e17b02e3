package model

// Window represents an application window.
type Window struct {
	App      string `yaml:"app"                json:"app"`
	PID      int    `yaml:"pid"                json:"pid"`
	Title    string `yaml:"title"              json:"title"`
	ID       uint32 `yaml:"id"                 json:"id"`
	Layer    int    `yaml:"layer"              json:"layer"`
	Bounds   [4]int `yaml:"bounds,flow"        json:"bounds"`
	OnScreen bool   `yaml:"on_screen"          json:"on_screen"`
	Focused  bool   `yaml:"focused,omitempty"  json:"focused,omitempty"`
}

// Width returns the window width in points.
func (w Window) Width() int { return w.Bounds[2] }

// Height returns the window height in points.
func (w Window) Height() int { return w.Bounds[3] }
