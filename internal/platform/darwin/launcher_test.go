//go:build darwin

package darwin

import (
	"context"
	"reflect"
	"testing"
)

func TestOpenArgs(t *testing.T) {
	got := openArgs("/Applications/Safari.app")
	want := []string{"-n", "/Applications/Safari.app"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLaunch_ReportsFailure(t *testing.T) {
	l := &DarwinLauncher{openPath: "/usr/bin/false"}
	if err := l.Launch(context.Background(), "/Applications/Nothing.app"); err == nil {
		t.Error("expected error when open fails")
	}
}
