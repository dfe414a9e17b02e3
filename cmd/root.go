package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/mj1618/spaces-cli/internal/config"
	"github.com/mj1618/spaces-cli/internal/logging"
	"github.com/mj1618/spaces-cli/internal/output"
	"github.com/mj1618/spaces-cli/internal/platform"
	"github.com/mj1618/spaces-cli/internal/version"
	"github.com/mj1618/spaces-cli/internal/workspace"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// LoggerLevel is bound to --log-level.
	LoggerLevel = logging.DefaultLevel

	// outputFormat is bound to --format.
	outputFormat = formatValue(output.FormatYAML)

	// cfg is loaded before every command runs.
	cfg = config.Defaults()
)

// formatValue accepts only the supported output formats.
type formatValue output.Format

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Set(s string) error {
	v, err := output.ParseFormat(s)
	if err != nil {
		return err
	}
	*f = formatValue(v)
	return nil
}

func (f *formatValue) Type() string { return "format" }

var rootCmd = &cobra.Command{
	Use:   "spaces-cli",
	Short: "Inspect macOS spaces and windows, and save app workspaces",
	Long: `A CLI tool for macOS Mission Control spaces. It reports the active space,
lists windows from the window server, and saves the apps on a space as a
named workspace that can be launched again later.`,
	SilenceUsage: true,
}

// Execute runs the root command with a context that is cancelled on SIGINT
// or SIGTERM.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	logging.Flush(rootCmd.Context())
	cancel()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().Var(&outputFormat, "format", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().Var(&LoggerLevel, "log-level", "Log level: trace, debug, info, warning, error, fatal, panic")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/spaces-cli/config.yaml)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = logging.Install(ctx, logging.New(os.Stderr, LoggerLevel))
		cmd.SetContext(ctx)
		rootCmd.SetContext(ctx)
		logger.Debugf(ctx, "log-level: %v", LoggerLevel)

		output.OutputFormat = output.Format(outputFormat)
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		var err error
		path, _ := rootCmd.PersistentFlags().GetString("config")
		if path == "" {
			cfg, err = config.Load()
		} else {
			cfg, err = config.LoadFromPath(path)
		}
		if err != nil {
			return err
		}
		logger.Debugf(ctx, "config: %+v", *cfg)
		return nil
	}
}

// newProvider is replaced in tests.
var newProvider = platform.NewProvider

// newStore opens the workspace store from the loaded config.
func newStore() *workspace.Store {
	return workspace.NewStore(cfg.StorePath)
}

// captureOptions builds capture settings from the loaded config.
func captureOptions() workspace.CaptureOptions {
	return workspace.CaptureOptions{
		MinWidth:       cfg.MinWindowWidth,
		MinHeight:      cfg.MinWindowHeight,
		ExcludeBundles: cfg.ExcludeBundles,
	}
}
