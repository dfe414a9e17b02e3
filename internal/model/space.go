package model

// Space is a virtual desktop on one display.
type Space struct {
	Number int    `yaml:"number"          json:"number"` // 1-based position on its display
	ID     int64  `yaml:"id"              json:"id"`     // ManagedSpaceID
	UUID   string `yaml:"uuid,omitempty"  json:"uuid,omitempty"`
	Type   int    `yaml:"type"            json:"type"`
	Active bool   `yaml:"active"          json:"active"`
}

// Display is a physical display and the spaces it manages.
type Display struct {
	ID           string  `yaml:"id"             json:"id"`
	CurrentSpace int64   `yaml:"current_space"  json:"current_space"`
	MenuBar      bool    `yaml:"menu_bar"       json:"menu_bar"`
	Spaces       []Space `yaml:"spaces"         json:"spaces"`
}

// ActiveSpace returns the display's active space, if any.
func (d Display) ActiveSpace() (Space, bool) {
	for _, s := range d.Spaces {
		if s.Active {
			return s, true
		}
	}
	return Space{}, false
}
