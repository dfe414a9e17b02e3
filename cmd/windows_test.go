package cmd

import (
	"testing"

	"github.com/mj1618/spaces-cli/internal/cgs"
	"github.com/spf13/cobra"
)

func TestWindowsCommand_Flags(t *testing.T) {
	flags := windowsCmd.Flags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"option", "stringSlice"},
		{"relative-to", "uint32"},
		{"pid", "int"},
		{"app", "string"},
		{"all-layers", "bool"},
		{"bbox", "string"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestWindowListOptions(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantOption cgs.WindowListOption
		wantRel    cgs.WindowID
		wantErr    bool
	}{
		{
			name:       "defaults",
			wantOption: 0,
		},
		{
			name:       "all",
			args:       []string{"--option", "all"},
			wantOption: cgs.OptionAll,
		},
		{
			name:       "relative options",
			args:       []string{"--option", "above-window,including-window", "--relative-to", "42"},
			wantOption: cgs.OptionOnScreenAboveWindow | cgs.OptionIncludingWindow,
			wantRel:    42,
		},
		{
			name:       "repeated flag",
			args:       []string{"--option", "below-window", "--option", "including-window", "--relative-to", "7"},
			wantOption: cgs.OptionOnScreenBelowWindow | cgs.OptionIncludingWindow,
			wantRel:    7,
		},
		{
			name:    "relative option without reference window",
			args:    []string{"--option", "below-window"},
			wantErr: true,
		},
		{
			name:    "unknown option",
			args:    []string{"--option", "sideways"},
			wantErr: true,
		},
		{
			name:    "bad bbox",
			args:    []string{"--bbox", "1,2,3"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &cobra.Command{}
			addWindowListFlags(c)
			if err := c.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}
			opts, err := windowListOptions(c)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", opts)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if opts.Option != tt.wantOption {
				t.Errorf("option: got %s, want %s", opts.Option, tt.wantOption)
			}
			if opts.RelativeTo != tt.wantRel {
				t.Errorf("relative-to: got %d, want %d", opts.RelativeTo, tt.wantRel)
			}
		})
	}
}

func TestWindowListOptions_Filters(t *testing.T) {
	c := &cobra.Command{}
	addWindowListFlags(c)
	if err := c.ParseFlags([]string{"--pid", "12", "--app", "Safari", "--all-layers", "--bbox", "0,0,100,50"}); err != nil {
		t.Fatal(err)
	}
	opts, err := windowListOptions(c)
	if err != nil {
		t.Fatal(err)
	}
	if opts.PID != 12 || opts.App != "Safari" || !opts.AllLayers {
		t.Errorf("filters not set: %+v", opts)
	}
	if opts.BBox == nil || opts.BBox.Width != 100 || opts.BBox.Height != 50 {
		t.Errorf("bbox: got %+v", opts.BBox)
	}
}
