package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/spaces-cli/internal/cgs"
	"github.com/mj1618/spaces-cli/internal/model"
)

// Bounds represents a screen rectangle.
type Bounds struct {
	X, Y, Width, Height int
}

// ParseBBox parses a "x,y,w,h" string into a Bounds.
func ParseBBox(s string) (*Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid bbox %q: expected x,y,w,h", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid bbox %q: %w", s, err)
		}
		vals[i] = v
	}
	return &Bounds{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// Intersects reports whether the window rectangle [x, y, w, h] overlaps b.
func (b Bounds) Intersects(r [4]int) bool {
	return r[0] < b.X+b.Width && b.X < r[0]+r[2] &&
		r[1] < b.Y+b.Height && b.Y < r[1]+r[3]
}

// ListOptions controls window listing.
type ListOptions struct {
	Option     cgs.WindowListOption // Window list selection (0 = on-screen only)
	RelativeTo cgs.WindowID         // Reference window for above/below/including
	PID        int                  // Filter by process ID (0 = unset)
	App        string               // Filter by app name (case-insensitive)
	AllLayers  bool                 // Include menu bar, dock, and other non-zero layers
	BBox       *Bounds              // Only windows overlapping this rectangle (nil = no filter)
}

// EffectiveOption returns the list option to query with.
func (o ListOptions) EffectiveOption() cgs.WindowListOption {
	if o.Option == 0 {
		return cgs.OptionOnScreenOnly
	}
	return o.Option
}

// RelativeOptions are the list options that need a reference window.
const RelativeOptions = cgs.OptionOnScreenAboveWindow | cgs.OptionOnScreenBelowWindow | cgs.OptionIncludingWindow

// Validate rejects relative list options without a reference window.
func (o ListOptions) Validate() error {
	if o.Option&RelativeOptions != 0 && o.RelativeTo == cgs.NullWindowID {
		return fmt.Errorf("list option %s requires a reference window (relative-to)", o.Option)
	}
	if o.BBox != nil && (o.BBox.Width <= 0 || o.BBox.Height <= 0) {
		return fmt.Errorf("invalid bbox: width and height must be positive")
	}
	return nil
}

// WindowFromInfo converts a window list entry into a model.Window.
func WindowFromInfo(info cgs.WindowInfo) model.Window {
	return model.Window{
		App:   info.OwnerName,
		PID:   info.OwnerPID,
		Title: info.Name,
		ID:    uint32(info.Number),
		Layer: info.Layer,
		Bounds: [4]int{
			int(info.Bounds.X),
			int(info.Bounds.Y),
			int(info.Bounds.Width),
			int(info.Bounds.Height),
		},
		OnScreen: info.OnScreen,
	}
}

// FilterWindows applies the ListOptions filters and marks the first window of
// frontPID as focused. It never returns nil.
func FilterWindows(windows []model.Window, opts ListOptions, frontPID int) []model.Window {
	out := make([]model.Window, 0, len(windows))
	focusAssigned := false
	for _, w := range windows {
		if !opts.AllLayers && w.Layer != 0 {
			continue
		}
		if opts.PID != 0 && w.PID != opts.PID {
			continue
		}
		if opts.App != "" && !strings.EqualFold(w.App, opts.App) {
			continue
		}
		if opts.BBox != nil && !opts.BBox.Intersects(w.Bounds) {
			continue
		}
		w.Focused = false
		if frontPID > 0 && w.PID == frontPID && w.Layer == 0 && !focusAssigned {
			w.Focused = true
			focusAssigned = true
		}
		out = append(out, w)
	}
	return out
}
