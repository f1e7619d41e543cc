package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gorewood/lanyard/internal/button"
	"github.com/gorewood/lanyard/internal/output"
)

func sampleButtons() []button.Button {
	return []button.Button{
		{
			ID:            "bt_1",
			Name:          "Run Tests",
			Cmd:           "npm test",
			AIDescription: "Run the suite",
			Scope:         button.ScopeWorkspace,
		},
		{
			ID:    "bt_2",
			Name:  "Git Commit",
			Cmd:   `git commit -m "{message}"`,
			Scope: button.ScopeGlobal,
			Inputs: []button.Input{
				{Placeholder: "Commit message", Variable: "{message}"},
			},
		},
	}
}

func TestFormatJSONIncludesScope(t *testing.T) {
	var buf bytes.Buffer
	printer := output.NewPrinter(&buf, true, false)

	if err := FormatJSON(printer, sampleButtons()); err != nil {
		t.Fatalf("FormatJSON() error = %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d buttons, want 2", len(decoded))
	}
	if decoded[0]["scope"] != "workspace" || decoded[1]["scope"] != "global" {
		t.Errorf("scopes = %v, %v", decoded[0]["scope"], decoded[1]["scope"])
	}
}

func TestFormatMarkdown(t *testing.T) {
	got := FormatMarkdown(sampleButtons())

	if !strings.HasPrefix(got, "---\nschema: lanyard.export/v1\n") {
		t.Errorf("missing frontmatter header:\n%s", got)
	}
	if !strings.Contains(got, "count: 2") {
		t.Error("missing count in frontmatter")
	}
	// Global section comes before workspace.
	globalIdx := strings.Index(got, "## Global")
	workspaceIdx := strings.Index(got, "## Workspace")
	if globalIdx < 0 || workspaceIdx < 0 || globalIdx > workspaceIdx {
		t.Errorf("scope sections missing or misordered:\n%s", got)
	}
	if !strings.Contains(got, "### Git Commit") {
		t.Error("missing button heading")
	}
	if !strings.Contains(got, "- `{message}`: Commit message") {
		t.Error("missing input listing")
	}
}

func TestFormatMarkdownEmptyScopeOmitted(t *testing.T) {
	buttons := []button.Button{
		{ID: "bt_1", Name: "X", Cmd: "ls", Scope: button.ScopeWorkspace},
	}

	got := FormatMarkdown(buttons)
	if strings.Contains(got, "## Global") {
		t.Error("empty global section should be omitted")
	}
	if !strings.Contains(got, "## Workspace") {
		t.Error("workspace section missing")
	}
}
