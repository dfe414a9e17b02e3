package cmd

import (
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/mj1618/spaces-cli/internal/output"
	"github.com/mj1618/spaces-cli/internal/workspace"
	"github.com/spf13/cobra"
)

var workspaceCmd = &cobra.Command{
	Use:     "workspace",
	Aliases: []string{"ws"},
	Short:   "Save and launch sets of apps",
	Long: `A workspace is a named list of applications captured from a space. Loading
a workspace launches each of its apps again.

Workspaces are stored as JSON in the store_path from the config file
(default ~/Library/Application Support/NiceUtil/workspaces.json).`,
}

var workspaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved workspaces",
	Args:  cobra.NoArgs,
	RunE:  runWorkspaceList,
}

var workspaceSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the apps on the current space as a workspace",
	Long: `Save every app that has a visible window on the current space. Windows
smaller than min_window_width x min_window_height and apps matching
exclude_bundles are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runWorkspaceSave,
}

var workspaceLoadCmd = &cobra.Command{
	Use:   "load <name or id>",
	Short: "Launch every app of a workspace",
	Long: `Launch every app of a workspace as a new, activated instance. An app that
fails to launch does not stop the others; all failures are reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runWorkspaceLoad,
}

var workspaceDeleteCmd = &cobra.Command{
	Use:     "delete <name or id>",
	Aliases: []string{"rm"},
	Short:   "Delete a workspace",
	Args:    cobra.ExactArgs(1),
	RunE:    runWorkspaceDelete,
}

var workspaceShortcutCmd = &cobra.Command{
	Use:   "shortcut",
	Short: "Assign or clear a workspace keyboard shortcut",
}

var workspaceShortcutSetCmd = &cobra.Command{
	Use:   "set <name or id> <combo>",
	Short: "Assign a shortcut such as cmd+shift+1",
	Args:  cobra.ExactArgs(2),
	RunE:  runWorkspaceShortcutSet,
}

var workspaceShortcutRemoveCmd = &cobra.Command{
	Use:   "remove <name or id>",
	Short: "Clear a workspace shortcut",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspaceShortcutRemove,
}

func init() {
	rootCmd.AddCommand(workspaceCmd)
	workspaceCmd.AddCommand(workspaceListCmd, workspaceSaveCmd, workspaceLoadCmd, workspaceDeleteCmd, workspaceShortcutCmd)
	workspaceShortcutCmd.AddCommand(workspaceShortcutSetCmd, workspaceShortcutRemoveCmd)

	workspaceSaveCmd.Flags().Bool("all-running-fallback", false, "Save all running apps if none has a visible window")
}

func runWorkspaceList(cmd *cobra.Command, args []string) error {
	store := newStore()
	logger.Debugf(cmd.Context(), "workspace store: %s", store.Path())
	all, err := store.List()
	if err != nil {
		return err
	}
	return output.Print(all)
}

func runWorkspaceSave(cmd *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}
	if provider.SpaceReader == nil || provider.Reader == nil || provider.AppLister == nil {
		return fmt.Errorf("workspace capture not available on this platform")
	}

	opts := captureOptions()
	opts.AllRunningFallback, _ = cmd.Flags().GetBool("all-running-fallback")

	ws, err := workspace.Save(cmd.Context(), newStore(), workspace.NewCapturer(provider), args[0], opts)
	if err != nil {
		return err
	}
	return output.Print(ws)
}

func runWorkspaceLoad(cmd *cobra.Command, args []string) error {
	ws, err := newStore().Get(args[0])
	if err != nil {
		return err
	}
	provider, err := newProvider()
	if err != nil {
		return err
	}
	if provider.Launcher == nil {
		return fmt.Errorf("launcher not available on this platform")
	}

	result, err := workspace.Launch(cmd.Context(), provider.Launcher, ws)
	if err != nil {
		logger.Errorf(cmd.Context(), "workspace %q: %v", ws.Name, err)
		if printErr := output.Print(result); printErr != nil {
			return printErr
		}
		return fmt.Errorf("failed to launch %d of %d apps", len(result.Failed), len(ws.Apps))
	}
	return output.Print(result)
}

func runWorkspaceDelete(cmd *cobra.Command, args []string) error {
	removed, err := newStore().Delete(args[0])
	if err != nil {
		return err
	}
	return output.Print(output.ActionResult{OK: true, Action: "delete", Target: removed.Name})
}

func runWorkspaceShortcutSet(cmd *cobra.Command, args []string) error {
	ws, err := newStore().SetShortcut(args[0], args[1])
	if err != nil {
		return err
	}
	return output.Print(output.ActionResult{
		OK:      true,
		Action:  "shortcut-set",
		Target:  ws.Name,
		Details: map[string]string{"shortcut": ws.Shortcut},
	})
}

func runWorkspaceShortcutRemove(cmd *cobra.Command, args []string) error {
	ws, err := newStore().RemoveShortcut(args[0])
	if err != nil {
		return err
	}
	return output.Print(output.ActionResult{OK: true, Action: "shortcut-remove", Target: ws.Name})
}
