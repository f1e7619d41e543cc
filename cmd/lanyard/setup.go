package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/lanyard/internal/output"
	"github.com/gorewood/lanyard/internal/setup"
)

func newSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Install editor integrations",
		Long:  `Install or remove the integrations that feed the activity log.`,
	}

	cmd.AddCommand(newSetupClaudeCmd())

	return cmd
}

func newSetupClaudeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claude",
		Short: "Install the Claude Code activity hook",
		Long: `Install a PostToolUse hook that records file edits and shell
commands in the workspace activity log via 'lanyard track hook'.

The hook is a marked section in post_tool_use.sh; existing hook content
outside the markers is preserved. By default the hook is installed
globally (~/.claude/hooks); use --project for this project only.`,
		Args: cobra.NoArgs,
		RunE: runSetupClaude,
	}

	cmd.Flags().Bool("project", false, "Install into this project's .claude/hooks")
	cmd.Flags().Bool("uninstall", false, "Remove the hook section instead")

	return cmd
}

func runSetupClaude(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	project, _ := cmd.Flags().GetBool("project")
	uninstall, _ := cmd.Flags().GetBool("uninstall")

	hookPath, scopeName, err := setup.ResolveHookPath(project)
	if err != nil {
		printer.Error(err)
		return err
	}

	if uninstall {
		if !setup.IsSectionInstalled(hookPath) {
			printer.Warn("hook not installed at %s", hookPath)
			if printer.IsJSON() {
				return printer.Success(map[string]any{"removed": false, "path": hookPath})
			}
			return nil
		}
		if err := setup.RemoveSectionFromHook(hookPath); err != nil {
			printer.Error(err)
			return err
		}
		if printer.IsJSON() {
			return printer.Success(map[string]any{"removed": true, "path": hookPath})
		}
		printer.Print("Removed %s hook section from %s\n", scopeName, hookPath)
		return nil
	}

	updated := setup.IsSectionInstalled(hookPath)
	if err := setup.InstallSection(hookPath); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"installed": true,
			"updated":   updated,
			"path":      hookPath,
			"scope":     scopeName,
		})
	}

	verb := "Installed"
	if updated {
		verb = "Updated"
	}
	printer.Print("%s %s hook at %s\n", verb, scopeName, hookPath)
	printer.Println("Activity will be recorded automatically while Claude Code works.")
	return nil
}
