package cmd

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/mj1618/spaces-cli/internal/cgs"
	"github.com/mj1618/spaces-cli/internal/logging"
	"github.com/mj1618/spaces-cli/internal/model"
	"github.com/mj1618/spaces-cli/internal/platform"
	"github.com/mj1618/spaces-cli/internal/spaces"
	"github.com/spf13/cobra"
)

type fakeSpaceReader struct {
	displays   []model.Display
	menuBar    string
	menuBarErr error
}

func (f *fakeSpaceReader) ListDisplays() ([]model.Display, error) { return f.displays, nil }

func (f *fakeSpaceReader) MenuBarDisplay() (string, error) { return f.menuBar, f.menuBarErr }

func withFakeProvider(t *testing.T, p *platform.Provider) {
	t.Helper()
	orig := newProvider
	newProvider = func() (*platform.Provider, error) { return p, nil }
	t.Cleanup(func() { newProvider = orig })
}

func newIndicatorTestCmd(t *testing.T, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	c := &cobra.Command{}
	c.Flags().Bool("watch", false, "")
	c.Flags().Duration("interval", 0, "")
	c.Flags().String("png", "", "")
	if err := c.ParseFlags(args); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetContext(logging.Install(context.Background(), logging.New(io.Discard, logger.LevelTrace)))
	return c, &buf
}

func threeSpaces() []model.Display {
	return spaces.Resolve([]cgs.ManagedDisplay{{
		DisplayIdentifier: "Main",
		CurrentSpace:      &cgs.Space{ManagedSpaceID: 20},
		Spaces:            []cgs.Space{{ManagedSpaceID: 10}, {ManagedSpaceID: 20}, {ManagedSpaceID: 30}},
	}}, "Main")
}

func TestRunIndicator(t *testing.T) {
	withFakeProvider(t, &platform.Provider{SpaceReader: &fakeSpaceReader{displays: threeSpaces()}})

	c, buf := newIndicatorTestCmd(t)
	if err := runIndicator(c, nil); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "1 [2] 3\n" {
		t.Errorf("got %q, want %q", got, "1 [2] 3\n")
	}
}

func TestRunIndicator_PNG(t *testing.T) {
	withFakeProvider(t, &platform.Provider{SpaceReader: &fakeSpaceReader{displays: threeSpaces()}})

	path := filepath.Join(t.TempDir(), "space.png")
	c, _ := newIndicatorTestCmd(t, "--png", path)
	if err := runIndicator(c, nil); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	want := spaces.Indicator{Active: 2, Total: 3}
	if img.Bounds().Dx() != want.Width() || img.Bounds().Dy() != spaces.IndicatorHeight {
		t.Errorf("png size: got %v", img.Bounds())
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}
}

func TestRunIndicator_NoCurrentSpace(t *testing.T) {
	withFakeProvider(t, &platform.Provider{SpaceReader: &fakeSpaceReader{}})

	c, _ := newIndicatorTestCmd(t)
	if err := runIndicator(c, nil); err == nil {
		t.Error("expected error when no space is active")
	}
}

func TestRunIndicator_NoSpaceReader(t *testing.T) {
	withFakeProvider(t, &platform.Provider{})

	c, _ := newIndicatorTestCmd(t)
	if err := runIndicator(c, nil); err == nil {
		t.Error("expected error without a space reader")
	}
}
