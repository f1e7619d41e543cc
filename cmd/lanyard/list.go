package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/lanyard/internal/button"
	"github.com/gorewood/lanyard/internal/output"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List buttons",
		Long: `List buttons visible from the current directory: global buttons
plus workspace buttons when inside an initialized project.`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("scope", "", "Only show one scope: workspace or global")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	scopeValue, _ := cmd.Flags().GetString("scope")

	store, err := openStore()
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("failed to load buttons", err)
		printer.Error(sysErr)
		return sysErr
	}

	buttons := store.Buttons()
	if scopeValue != "" {
		scope, scopeErr := parseScope(scopeValue)
		if scopeErr != nil {
			printer.Error(scopeErr)
			return scopeErr
		}
		buttons = store.Scoped(scope)
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"buttons": withScopes(buttons),
			"count":   len(buttons),
		})
	}

	if len(buttons) == 0 {
		printer.Println("No buttons yet. Try 'lanyard suggest' or 'lanyard create'.")
		return nil
	}

	rows := make([][]string, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, []string{b.ID, b.Name, b.Cmd, string(b.Scope)})
	}
	printer.Table([]string{"ID", "NAME", "COMMAND", "SCOPE"}, rows)
	return nil
}

// scopedButton carries the runtime scope in JSON output, where the plain
// Button type omits it.
type scopedButton struct {
	button.Button
	Scope string `json:"scope"`
}

func withScopes(buttons []button.Button) []scopedButton {
	out := make([]scopedButton, 0, len(buttons))
	for _, b := range buttons {
		out = append(out, scopedButton{Button: b, Scope: string(b.Scope)})
	}
	return out
}
