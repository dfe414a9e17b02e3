package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	SpaceReader SpaceReader
	Reader      Reader
	AppLister   AppLister
	Launcher    Launcher
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("spaces-cli is not supported on %s/%s; supported: darwin/amd64, darwin/arm64 (cgo enabled)", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewProviderFunc func() (*Provider, error)

// ScreenRecordingGrantedFunc is set by platform-specific packages via init().
// Window titles of other apps are only visible with screen recording permission.
var ScreenRecordingGrantedFunc func() bool

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
