// Package cgs binds the macOS window-server ("Skylight") private calls used to
// enumerate displays and spaces, plus the public CoreGraphics window list.
//
// The calls are thin pass-throughs: their success semantics, thread safety and
// handle lifetimes are defined by the operating system. CoreFoundation results
// are converted into plain Go values and released before returning.
package cgs

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strconv"
	"strings"
)

// ConnectionID is a handle to the window-server session.
type ConnectionID int32

// WindowID uniquely names an on-screen or off-screen window within the
// current window-server session.
type WindowID uint32

// WindowListOption selects which windows a window list query returns.
type WindowListOption uint32

const (
	OptionOnScreenOnly        WindowListOption = 1 << 0
	OptionAll                 WindowListOption = 1 << 1
	OptionOnScreenAboveWindow WindowListOption = 1 << 2
	OptionOnScreenBelowWindow WindowListOption = 1 << 3
	OptionIncludingWindow     WindowListOption = 1 << 4
)

// NullWindowID means "no reference window".
const NullWindowID WindowID = 0

// WindowIDFromInt converts a signed integer, e.g. a decoded JSON number, to a
// WindowID. Values outside the uint32 range are rejected.
func WindowIDFromInt(v int64) (WindowID, error) {
	if v < 0 || v > math.MaxUint32 {
		return NullWindowID, fmt.Errorf("window id %d out of range (0..%d)", v, uint32(math.MaxUint32))
	}
	return WindowID(v), nil
}

var (
	// ErrUnsupported is returned on platforms without the window server.
	ErrUnsupported = fmt.Errorf("window server APIs are not available on %s/%s (requires darwin with cgo)", runtime.GOOS, runtime.GOARCH)

	// ErrNilResult is returned when a copy call hands back no collection.
	ErrNilResult = errors.New("window server returned no result")

	// ErrNotSerializable is returned when a returned collection holds values
	// that cannot be converted to Go.
	ErrNotSerializable = errors.New("window server result could not be converted")
)

var optionNames = []struct {
	opt  WindowListOption
	name string
}{
	{OptionOnScreenOnly, "on-screen-only"},
	{OptionAll, "all"},
	{OptionOnScreenAboveWindow, "above-window"},
	{OptionOnScreenBelowWindow, "below-window"},
	{OptionIncludingWindow, "including-window"},
}

// Has reports whether every bit of flag is set in o.
func (o WindowListOption) Has(flag WindowListOption) bool {
	return flag != 0 && o&flag == flag
}

// String renders the set as "name|name". Unknown bits are rendered in hex.
func (o WindowListOption) String() string {
	if o == 0 {
		return "none"
	}
	var parts []string
	rest := o
	for _, n := range optionNames {
		if o.Has(n.opt) {
			parts = append(parts, n.name)
			rest &^= n.opt
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseWindowListOptions combines option names into a flag set. Each argument
// may itself be a comma or "|" separated list; numeric values are accepted as
// raw bit masks.
func ParseWindowListOptions(values ...string) (WindowListOption, error) {
	var opt WindowListOption
	for _, v := range values {
		for _, field := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == '|' }) {
			field = strings.ToLower(strings.TrimSpace(field))
			if field == "" {
				continue
			}
			if n, err := strconv.ParseUint(field, 0, 32); err == nil {
				opt |= WindowListOption(n)
				continue
			}
			found := false
			for _, n := range optionNames {
				if n.name == field || strings.ReplaceAll(n.name, "-", "") == field {
					opt |= n.opt
					found = true
					break
				}
			}
			if !found {
				return 0, fmt.Errorf("unknown window list option: %q (expected on-screen-only, all, above-window, below-window, or including-window)", field)
			}
		}
	}
	return opt, nil
}

// Space is one managed space as reported by the window server.
type Space struct {
	ID64           int64  `json:"id64"`
	ManagedSpaceID int64  `json:"ManagedSpaceID"`
	UUID           string `json:"uuid"`
	Type           int    `json:"type"`
}

// ManagedDisplay is one display entry of the managed display spaces list.
type ManagedDisplay struct {
	DisplayIdentifier string  `json:"Display Identifier"`
	CurrentSpace      *Space  `json:"Current Space,omitempty"`
	Spaces            []Space `json:"Spaces"`
}

// WindowBounds is a window rectangle in global display points.
type WindowBounds struct {
	X      float64 `json:"X"`
	Y      float64 `json:"Y"`
	Width  float64 `json:"Width"`
	Height float64 `json:"Height"`
}

// WindowInfo is one entry of the CoreGraphics window list.
type WindowInfo struct {
	Number       WindowID     `json:"kCGWindowNumber"`
	Layer        int          `json:"kCGWindowLayer"`
	OwnerPID     int          `json:"kCGWindowOwnerPID"`
	OwnerName    string       `json:"kCGWindowOwnerName"`
	Name         string       `json:"kCGWindowName"`
	Alpha        float64      `json:"kCGWindowAlpha"`
	OnScreen     bool         `json:"kCGWindowIsOnscreen"`
	SharingState int          `json:"kCGWindowSharingState"`
	MemoryUsage  int64        `json:"kCGWindowMemoryUsage"`
	Bounds       WindowBounds `json:"kCGWindowBounds"`
}
