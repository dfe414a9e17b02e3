//go:build darwin && cgo

package darwin

import "github.com/mj1618/spaces-cli/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		reader := NewReader()
		return &platform.Provider{
			SpaceReader: reader,
			Reader:      reader,
			AppLister:   NewAppLister(),
			Launcher:    NewLauncher(),
		}, nil
	}
	platform.ScreenRecordingGrantedFunc = IsScreenRecordingGranted
}
