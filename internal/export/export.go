// Package export provides formatting and output for button lists.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/gorewood/lanyard/internal/button"
	"github.com/gorewood/lanyard/internal/output"
)

// FormatJSON outputs the buttons as a JSON array to the printer.
func FormatJSON(printer *output.Printer, buttons []button.Button) error {
	// The scope tag is not serialized on Button; wrap for export so
	// consumers can tell the tiers apart.
	type exported struct {
		button.Button
		Scope button.Scope `json:"scope"`
	}

	out := make([]exported, 0, len(buttons))
	for _, b := range buttons {
		out = append(out, exported{Button: b, Scope: b.Scope})
	}
	return printer.WriteJSON(out)
}

// FormatMarkdown formats the button list as a markdown document,
// grouped by scope.
func FormatMarkdown(buttons []button.Button) string {
	var builder strings.Builder

	builder.WriteString("---\n")
	builder.WriteString("schema: lanyard.export/v1\n")
	fmt.Fprintf(&builder, "exported: %s\n", time.Now().UTC().Format("2006-01-02"))
	fmt.Fprintf(&builder, "count: %d\n", len(buttons))
	builder.WriteString("---\n\n# Buttons\n")

	for _, scope := range []button.Scope{button.ScopeGlobal, button.ScopeWorkspace} {
		scoped := filterScope(buttons, scope)
		if len(scoped) == 0 {
			continue
		}

		fmt.Fprintf(&builder, "\n## %s\n\n", titleCase(string(scope)))
		for _, b := range scoped {
			writeButton(&builder, b)
		}
	}

	return builder.String()
}

// writeButton renders one button section.
func writeButton(builder *strings.Builder, b button.Button) {
	fmt.Fprintf(builder, "### %s\n\n", b.Name)
	fmt.Fprintf(builder, "```\n%s\n```\n\n", b.Cmd)

	if desc := b.Description(); desc != "" {
		fmt.Fprintf(builder, "%s\n\n", desc)
	}

	if len(b.Inputs) > 0 {
		builder.WriteString("Inputs:\n")
		for _, in := range b.Inputs {
			fmt.Fprintf(builder, "- `%s`: %s\n", in.Variable, in.Placeholder)
		}
		builder.WriteString("\n")
	}
}

// titleCase upper-cases the first byte; scope names are ASCII.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// filterScope selects buttons of one scope, preserving order.
func filterScope(buttons []button.Button, scope button.Scope) []button.Button {
	var out []button.Button
	for _, b := range buttons {
		if b.Scope == scope {
			out = append(out, b)
		}
	}
	return out
}
