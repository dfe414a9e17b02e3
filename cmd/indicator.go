package cmd

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/mj1618/spaces-cli/internal/output"
	"github.com/mj1618/spaces-cli/internal/spaces"
	"github.com/mj1618/spaces-cli/internal/workspace"
	"github.com/spf13/cobra"
)

var indicatorCmd = &cobra.Command{
	Use:   "indicator",
	Short: "Print the space indicator, e.g. \"1 [2] 3\"",
	Long: `Print the space indicator for the active space: one number per space on the
display, with the active one in brackets.

With --watch, a new line is printed every time the active space changes,
which suits status bars such as SwiftBar or sketchybar. With --png, the
indicator is also rendered as a status bar sized image.

Examples:
  spaces-cli indicator
  spaces-cli indicator --watch --interval 500ms
  spaces-cli indicator --png /tmp/space.png`,
	RunE: runIndicator,
}

func init() {
	rootCmd.AddCommand(indicatorCmd)
	indicatorCmd.Flags().Bool("watch", false, "Keep running and print on every space change")
	indicatorCmd.Flags().Duration("interval", 0, "Polling interval for --watch (default from config, 1s)")
	indicatorCmd.Flags().String("png", "", "Also render the indicator to this PNG file")
}

func runIndicator(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	provider, err := newProvider()
	if err != nil {
		return err
	}
	if provider.SpaceReader == nil {
		return fmt.Errorf("space reader not available on this platform")
	}

	watch, _ := cmd.Flags().GetBool("watch")
	interval, _ := cmd.Flags().GetDuration("interval")
	pngPath, _ := cmd.Flags().GetString("png")
	if interval <= 0 {
		interval = cfg.PollInterval
	}

	emit := func(pos spaces.Position, ok bool) error {
		ind := spaces.Indicator{}
		if ok {
			ind = spaces.NewIndicator(pos)
		}
		if pngPath != "" {
			if err := writeIndicatorPNG(pngPath, ind); err != nil {
				return err
			}
		}
		if output.OutputFormat == output.FormatJSON {
			return output.Print(CurrentResult{Position: pos, Indicator: ind.String()})
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), ind.String())
		return err
	}

	if !watch {
		displays, err := provider.SpaceReader.ListDisplays()
		if err != nil {
			return err
		}
		pos, ok := spaces.Current(displays)
		if !ok {
			return workspace.ErrNoCurrentSpace
		}
		return emit(pos, true)
	}

	logger.Debugf(ctx, "watching active space every %s", interval)
	err = spaces.Watch(ctx, provider.SpaceReader, interval, emit)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func writeIndicatorPNG(path string, ind spaces.Indicator) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}
	if err := png.Encode(f, ind.Render()); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
