// Package spaces turns the window server's managed display list into numbered
// spaces and tracks which one is active.
package spaces

import (
	"fmt"
	"strings"

	"github.com/mj1618/spaces-cli/internal/cgs"
	"github.com/mj1618/spaces-cli/internal/model"
)

// Position is the active space and the number of spaces on its display.
type Position struct {
	Display string `yaml:"display" json:"display"`
	Number  int    `yaml:"number"  json:"number"`
	Total   int    `yaml:"total"   json:"total"`
	SpaceID int64  `yaml:"space_id" json:"space_id"`
}

// Resolve numbers each display's spaces from 1 and marks the current one.
// menuBarID is the identifier of the display showing the active menu bar;
// it may be empty.
func Resolve(raw []cgs.ManagedDisplay, menuBarID string) []model.Display {
	displays := make([]model.Display, 0, len(raw))
	for _, rd := range raw {
		d := model.Display{
			ID:      rd.DisplayIdentifier,
			MenuBar: menuBarID != "" && rd.DisplayIdentifier == menuBarID,
			Spaces:  make([]model.Space, 0, len(rd.Spaces)),
		}
		if rd.CurrentSpace != nil {
			d.CurrentSpace = rd.CurrentSpace.ManagedSpaceID
		}
		for i, rs := range rd.Spaces {
			d.Spaces = append(d.Spaces, model.Space{
				Number: i + 1,
				ID:     rs.ManagedSpaceID,
				UUID:   rs.UUID,
				Type:   rs.Type,
				Active: rd.CurrentSpace != nil && rs.ManagedSpaceID == rd.CurrentSpace.ManagedSpaceID,
			})
		}
		displays = append(displays, d)
	}
	return displays
}

// Current returns the active space position. The display showing the active
// menu bar takes precedence; otherwise the first display with a matching
// current space is used. It returns false when no space is active.
func Current(displays []model.Display) (Position, bool) {
	var fallback *Position
	for _, d := range displays {
		s, ok := d.ActiveSpace()
		if !ok {
			continue
		}
		pos := Position{Display: d.ID, Number: s.Number, Total: len(d.Spaces), SpaceID: s.ID}
		if d.MenuBar {
			return pos, true
		}
		if fallback == nil {
			fallback = &pos
		}
	}
	if fallback == nil {
		return Position{}, false
	}
	return *fallback, true
}

// FindDisplay looks up a display by case-insensitive identifier. An empty
// identifier selects the menu-bar display, or the first display.
func FindDisplay(displays []model.Display, displayID string) (model.Display, error) {
	var target *model.Display
	for i := range displays {
		d := &displays[i]
		if displayID != "" {
			if strings.EqualFold(d.ID, displayID) {
				target = d
				break
			}
			continue
		}
		if d.MenuBar {
			target = d
			break
		}
		if target == nil {
			target = d
		}
	}
	if target == nil {
		if displayID != "" {
			return model.Display{}, fmt.Errorf("no display with identifier %q", displayID)
		}
		return model.Display{}, fmt.Errorf("no displays found")
	}
	return *target, nil
}

// Find looks up a space by its 1-based number on the given display. An empty
// display ID selects the menu-bar display, or the first display.
func Find(displays []model.Display, displayID string, number int) (model.Space, error) {
	d, err := FindDisplay(displays, displayID)
	if err != nil {
		return model.Space{}, err
	}
	if number < 1 || number > len(d.Spaces) {
		return model.Space{}, fmt.Errorf("space %d out of range (display %q has %d spaces)", number, d.ID, len(d.Spaces))
	}
	return d.Spaces[number-1], nil
}
