package cgs

import (
	"encoding/json"
	"fmt"
)

// The Objective-C shim serializes CoreFoundation collections with
// NSJSONSerialization; these decode that payload.

func decodeManagedDisplays(data []byte) ([]ManagedDisplay, error) {
	var displays []ManagedDisplay
	if err := json.Unmarshal(data, &displays); err != nil {
		return nil, fmt.Errorf("decode managed display spaces: %w", err)
	}
	if displays == nil {
		displays = []ManagedDisplay{}
	}
	return displays, nil
}

func decodeWindowList(data []byte) ([]WindowInfo, error) {
	var windows []WindowInfo
	if err := json.Unmarshal(data, &windows); err != nil {
		return nil, fmt.Errorf("decode window list: %w", err)
	}
	if windows == nil {
		windows = []WindowInfo{}
	}
	return windows, nil
}

// shimError maps a shim return code onto an error naming the failed call.
func shimError(call string, rc int) error {
	switch rc {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%s: %w", call, ErrNilResult)
	default:
		return fmt.Errorf("%s: %w", call, ErrNotSerializable)
	}
}
