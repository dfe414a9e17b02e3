package cmd

import (
	"fmt"

	"github.com/mj1618/spaces-cli/internal/output"
	"github.com/mj1618/spaces-cli/internal/spaces"
	"github.com/spf13/cobra"
)

var spacesCmd = &cobra.Command{
	Use:   "spaces",
	Short: "List displays and their spaces",
	Long: `List every display with its spaces (virtual desktops) numbered from 1,
marking the active space on each display and the display that shows the
active menu bar.

With --number, only that space is shown. It is looked up on --display, or on
the menu-bar display when --display is not given.

Examples:
  spaces-cli spaces
  spaces-cli spaces --display 37D8832A-2D66-02CA-B9F7-8F30A301B230
  spaces-cli spaces --number 2`,
	Args: cobra.NoArgs,
	RunE: runSpaces,
}

func init() {
	rootCmd.AddCommand(spacesCmd)
	addSpacesFlags(spacesCmd)
}

func addSpacesFlags(c *cobra.Command) {
	c.Flags().String("display", "", "Only show the display with this identifier (case-insensitive)")
	c.Flags().Int("number", 0, "Only show the space with this 1-based number")
}

func runSpaces(cmd *cobra.Command, args []string) error {
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

	displayID, _ := cmd.Flags().GetString("display")
	if cmd.Flags().Changed("number") {
		number, _ := cmd.Flags().GetInt("number")
		s, err := spaces.Find(displays, displayID, number)
		if err != nil {
			return err
		}
		return output.Print(s)
	}
	if displayID != "" {
		d, err := spaces.FindDisplay(displays, displayID)
		if err != nil {
			return err
		}
		return output.Print(d)
	}
	return output.Print(displays)
}
