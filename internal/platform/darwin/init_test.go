//go:build darwin && cgo

package darwin

import (
	"testing"

	"github.com/mj1618/spaces-cli/internal/platform"
)

func TestInit_RegistersProvider(t *testing.T) {
	if platform.NewProviderFunc == nil {
		t.Fatal("darwin init should register NewProviderFunc")
	}
	if platform.ScreenRecordingGrantedFunc == nil {
		t.Fatal("darwin init should register ScreenRecordingGrantedFunc")
	}

	p, err := platform.NewProvider()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.SpaceReader.(*DarwinReader); !ok {
		t.Errorf("SpaceReader: got %T, want *DarwinReader", p.SpaceReader)
	}
	if _, ok := p.Reader.(*DarwinReader); !ok {
		t.Errorf("Reader: got %T, want *DarwinReader", p.Reader)
	}
	if _, ok := p.AppLister.(*DarwinAppLister); !ok {
		t.Errorf("AppLister: got %T, want *DarwinAppLister", p.AppLister)
	}
	if l, ok := p.Launcher.(*DarwinLauncher); !ok || l.openPath != "/usr/bin/open" {
		t.Errorf("Launcher: got %#v", p.Launcher)
	}
}
