package cmd

import (
	"fmt"

	"github.com/mj1618/spaces-cli/internal/output"
	"github.com/spf13/cobra"
)

// MenuBarResult is the output of `menubar-display`.
type MenuBarResult struct {
	Display string `yaml:"display" json:"display"`
}

var menuBarCmd = &cobra.Command{
	Use:   "menubar-display",
	Short: "Show the identifier of the display with the active menu bar",
	RunE:  runMenuBar,
}

func init() {
	rootCmd.AddCommand(menuBarCmd)
}

func runMenuBar(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}
	if provider.SpaceReader == nil {
		return fmt.Errorf("space reader not available on this platform")
	}
	id, err := provider.SpaceReader.MenuBarDisplay()
	if err != nil {
		return err
	}
	return output.Print(MenuBarResult{Display: id})
}
