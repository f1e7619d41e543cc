// Package mcp provides a Model Context Protocol server for lanyard.
// It exposes button operations as MCP tools that any MCP-capable agent
// environment can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/lanyard/internal/activity"
	"github.com/gorewood/lanyard/internal/button"
	"github.com/gorewood/lanyard/internal/llm"
)

// Deps holds the collaborators the tool handlers need.
type Deps struct {
	Store     *button.Store
	Log       *activity.Log // nil when no project is open
	Completer llm.Completer // nil disables AI-assisted stages
}

// NewServer creates an MCP server with all lanyard tools registered.
func NewServer(version string, deps Deps) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "lanyard",
		Version: version,
	}, nil)
	registerTools(server, deps)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for additive write tools.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all lanyard tools to the server.
func registerTools(server *mcp.Server, deps Deps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_buttons",
		Description: "List saved command buttons, optionally filtered by scope (workspace or global).",
		Annotations: readOnlyAnnotations(),
	}, handleList(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "suggest_buttons",
		Description: "Propose command buttons from the project's recent activity. With save=true the unique proposals are stored.",
		Annotations: writeAnnotations(),
	}, handleSuggest(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_button",
		Description: "Create a command button. Duplicates of existing buttons are skipped; global candidates are demoted to workspace scope when not safe to share across projects.",
		Annotations: writeAnnotations(),
	}, handleCreate(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name: "remove_button",
		Description: "Delete a button by ID or name. There is no undo.",
		Annotations: &mcp.ToolAnnotations{
			DestructiveHint: boolPtr(true),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleRemove(deps))
}
