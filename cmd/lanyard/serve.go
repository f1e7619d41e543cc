package main

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/lanyard/internal/button"
	"github.com/gorewood/lanyard/internal/mcp"
	"github.com/gorewood/lanyard/internal/output"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdio",
		Long: `Run a Model Context Protocol server over stdin/stdout.

Exposes list_buttons, suggest_buttons, create_button, and remove_button
so agents can read and manage buttons for the current workspace.

Add to an MCP client config:
  {"command": "lanyard", "args": ["serve"]}`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), false).
		WithStderr(cmd.ErrOrStderr())

	store := button.NewStore(buttonPaths())
	server := mcp.NewServer(buildVersion(), mcp.Deps{
		Store:     store,
		Log:       openLog(),
		Completer: newCompleter(),
	})

	if err := server.Run(cmd.Context(), &sdkmcp.StdioTransport{}); err != nil {
		sysErr := output.NewSystemErrorWithCause("MCP server failed", err)
		printer.Error(sysErr)
		return sysErr
	}
	return nil
}
