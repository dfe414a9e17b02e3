//go:build !darwin || !cgo

package cgs

// DefaultConnection returns 0 where no window server is available.
func DefaultConnection() ConnectionID {
	return 0
}

func CopyManagedDisplaySpaces(conn ConnectionID) ([]ManagedDisplay, error) {
	return nil, ErrUnsupported
}

func CopyActiveMenuBarDisplayIdentifier(conn ConnectionID) (string, error) {
	return "", ErrUnsupported
}

func CopyWindowListInfo(option WindowListOption, relativeTo WindowID) ([]WindowInfo, error) {
	return nil, ErrUnsupported
}
