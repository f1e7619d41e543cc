package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/lanyard/internal/activity"
	"github.com/gorewood/lanyard/internal/button"
	"github.com/gorewood/lanyard/internal/config"
	"github.com/gorewood/lanyard/internal/llm"
	"github.com/gorewood/lanyard/internal/output"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show workspace and model status",
		Long: `Show the workspace location, button counts per scope, activity log
size, and which model would be used for suggestions.`,
		Args: cobra.NoArgs,
		RunE: runStatus,
	}

	return cmd
}

func runStatus(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	store, err := openStore()
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to load buttons", err)
		printer.Error(sysErr)
		return sysErr
	}

	workspace := config.WorkspaceDir()
	globalCount := len(store.Scoped(button.ScopeGlobal))
	workspaceCount := len(store.Scoped(button.ScopeWorkspace))

	entries := 0
	if log := openLog(); log != nil {
		if text, readErr := log.Read(); readErr == nil {
			entries = len(activity.Aggregate(text))
		}
	}

	model := "none"
	if client, clientErr := llm.FromEnv(); clientErr == nil {
		model = client.Model()
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"workspace":         workspace,
			"global_buttons":    globalCount,
			"workspace_buttons": workspaceCount,
			"activities":        entries,
			"model":             model,
		})
	}

	printer.Section("Workspace")
	if workspace == "" {
		printer.KeyValue("directory", "not initialized (run 'lanyard init')")
	} else {
		printer.KeyValue("directory", workspace)
		printer.KeyValue("activities", strconv.Itoa(entries))
	}

	printer.Section("Buttons")
	printer.KeyValue("workspace", strconv.Itoa(workspaceCount))
	printer.KeyValue("global", strconv.Itoa(globalCount))

	printer.Section("Model")
	printer.KeyValue("model", model)
	return nil
}
