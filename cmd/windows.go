package cmd

import (
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/mj1618/spaces-cli/internal/cgs"
	"github.com/mj1618/spaces-cli/internal/output"
	"github.com/mj1618/spaces-cli/internal/platform"
	"github.com/spf13/cobra"
)

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List windows from the window server",
	Long: `List windows the way CGWindowListCopyWindowInfo selects them.

List options (combine with commas or repeat --option):
  on-screen-only     windows currently on screen (default)
  all                every window, including off-screen and other spaces
  above-window       on-screen windows above --relative-to
  below-window       on-screen windows below --relative-to
  including-window   also include the --relative-to window itself

Window titles of other applications are only reported when screen
recording permission has been granted.`,
	RunE: runWindows,
}

func init() {
	rootCmd.AddCommand(windowsCmd)
	addWindowListFlags(windowsCmd)
}

func addWindowListFlags(c *cobra.Command) {
	c.Flags().StringSlice("option", nil, "List options (see above)")
	c.Flags().Uint32("relative-to", uint32(cgs.NullWindowID), "Reference window ID for above/below/including options")
	c.Flags().Int("pid", 0, "Filter windows by PID")
	c.Flags().String("app", "", "Filter windows by app name")
	c.Flags().Bool("all-layers", false, "Include menu bar, dock and other non-window layers")
	c.Flags().String("bbox", "", "Only windows overlapping x,y,w,h")
}

func runWindows(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	provider, err := newProvider()
	if err != nil {
		return err
	}
	if provider.Reader == nil {
		return fmt.Errorf("reader not available on this platform")
	}

	opts, err := windowListOptions(cmd)
	if err != nil {
		return err
	}
	if platform.ScreenRecordingGrantedFunc != nil && !platform.ScreenRecordingGrantedFunc() {
		logger.Warnf(ctx, "screen recording permission not granted; window titles of other apps will be empty")
	}

	windows, err := provider.Reader.ListWindows(opts)
	if err != nil {
		return err
	}
	logger.Debugf(ctx, "listed %d windows with option %s", len(windows), opts.EffectiveOption())
	return output.Print(windows)
}

func windowListOptions(cmd *cobra.Command) (platform.ListOptions, error) {
	names, _ := cmd.Flags().GetStringSlice("option")
	relativeTo, _ := cmd.Flags().GetUint32("relative-to")
	pid, _ := cmd.Flags().GetInt("pid")
	appName, _ := cmd.Flags().GetString("app")
	allLayers, _ := cmd.Flags().GetBool("all-layers")
	bboxStr, _ := cmd.Flags().GetString("bbox")

	opt, err := cgs.ParseWindowListOptions(names...)
	if err != nil {
		return platform.ListOptions{}, err
	}
	opts := platform.ListOptions{
		Option:     opt,
		RelativeTo: cgs.WindowID(relativeTo),
		PID:        pid,
		App:        appName,
		AllLayers:  allLayers,
	}
	if bboxStr != "" {
		opts.BBox, err = platform.ParseBBox(bboxStr)
		if err != nil {
			return platform.ListOptions{}, err
		}
	}
	if err := opts.Validate(); err != nil {
		return platform.ListOptions{}, err
	}
	return opts, nil
}
