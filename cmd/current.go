package cmd

import (
	"fmt"

	"github.com/mj1618/spaces-cli/internal/output"
	"github.com/mj1618/spaces-cli/internal/spaces"
	"github.com/mj1618/spaces-cli/internal/workspace"
	"github.com/spf13/cobra"
)

// CurrentResult is the output of `current`.
type CurrentResult struct {
	spaces.Position `yaml:",inline"`
	Indicator       string `yaml:"indicator" json:"indicator"`
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active space",
	Long: `Show the active space number, the number of spaces on its display, and an
indicator string such as "1 [2] 3".`,
	RunE: runCurrent,
}

func init() {
	rootCmd.AddCommand(currentCmd)
}

func runCurrent(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}
	if provider.SpaceReader == nil {
		return fmt.Errorf("space reader not available on this platform")
	}

	displays, err := provider.SpaceReader.ListDisplays()
	if err != nil {
		return err
	}
	pos, ok := spaces.Current(displays)
	if !ok {
		return workspace.ErrNoCurrentSpace
	}
	return output.Print(CurrentResult{Position: pos, Indicator: spaces.NewIndicator(pos).String()})
}
