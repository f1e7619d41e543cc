package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/lanyard/internal/export"
	"github.com/gorewood/lanyard/internal/output"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export buttons as JSON or Markdown",
		Long: `Export all visible buttons to stdout.

The json format is machine-readable and includes each button's scope.
The markdown format is a readable document grouped by scope, suitable
for checking into a repo or sharing with a team.`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().String("format", "json", "Output format: json or markdown")
	cmd.Flags().String("scope", "", "Only export one scope: workspace or global")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	format, _ := cmd.Flags().GetString("format")
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

	switch format {
	case "json":
		return export.FormatJSON(printer, buttons)
	case "markdown", "md":
		printer.Print("%s", export.FormatMarkdown(buttons))
		return nil
	default:
		fmtErr := output.NewUserError(fmt.Sprintf("invalid format %q: must be 'json' or 'markdown'", format))
		printer.Error(fmtErr)
		return fmtErr
	}
}
