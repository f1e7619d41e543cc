package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/gorewood/lanyard/internal/activity"
	"github.com/gorewood/lanyard/internal/button"
	"github.com/gorewood/lanyard/internal/llm"
	"github.com/gorewood/lanyard/internal/prompt"
)

// proposal is the JSON shape the model is asked to return.
type proposal struct {
	Name          string         `json:"name"`
	Cmd           string         `json:"cmd"`
	AIDescription string         `json:"ai_description"`
	Inputs        []button.Input `json:"inputs"`
}

// Generator produces button proposals from activity or free text.
// Its output is NOT deduplicated or scope-validated; the caller runs
// the Detector and classifier before persisting.
type Generator struct {
	completer llm.Completer // nil forces the deterministic fallback
	osName    string
	shell     string
}

// NewGenerator creates a Generator embedding the current platform and
// shell so proposed commands are platform-appropriate.
func NewGenerator(completer llm.Completer) *Generator {
	return &Generator{
		completer: completer,
		osName:    runtime.GOOS,
		shell:     ShellName(),
	}
}

// FromActivity proposes buttons for the ranked activity list. The AI
// path degrades to the deterministic Fallback catalog when no model is
// available, the completion fails, or the response is unparsable.
func (g *Generator) FromActivity(ctx context.Context, top []activity.Tally, maxButtons int) []button.Button {
	if g.completer == nil {
		return Fallback(top)
	}

	tmpl, err := prompt.Load("suggest")
	if err != nil {
		return Fallback(top)
	}

	rendered := prompt.Render(tmpl, map[string]string{
		"os":         g.osName,
		"shell":      g.shell,
		"max":        strconv.Itoa(maxButtons),
		"activities": describeActivities(top),
	})

	resp, err := g.completer.Complete(ctx, llm.Request{Prompt: rendered})
	if err != nil {
		return Fallback(top)
	}

	proposals, ok := parseProposalArray(resp.Content)
	if !ok {
		return Fallback(top)
	}
	return proposals
}

// FromDescription generates one button from a free-text description.
// Returns ok=false when no model is available, the call fails, or the
// response lacks the required fields; the caller then falls through to
// manual entry.
func (g *Generator) FromDescription(ctx context.Context, description string) (button.Button, bool) {
	if g.completer == nil {
		return button.Button{}, false
	}

	tmpl, err := prompt.Load("describe")
	if err != nil {
		return button.Button{}, false
	}

	rendered := prompt.Render(tmpl, map[string]string{
		"os":          g.osName,
		"shell":       g.shell,
		"description": description,
	})

	resp, err := g.completer.Complete(ctx, llm.Request{Prompt: rendered})
	if err != nil {
		return button.Button{}, false
	}

	raw, ok := extractJSONObject(resp.Content)
	if !ok {
		return button.Button{}, false
	}

	var p proposal
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return button.Button{}, false
	}
	if p.Name == "" || p.Cmd == "" || p.AIDescription == "" {
		return button.Button{}, false
	}

	return toButton(p), true
}

// parseProposalArray extracts and parses the first JSON array in the
// completion text. Objects missing name or cmd are silently dropped.
func parseProposalArray(content string) ([]button.Button, bool) {
	raw, ok := extractJSONArray(stripCodeFences(content))
	if !ok {
		return nil, false
	}

	var proposals []proposal
	if err := json.Unmarshal([]byte(raw), &proposals); err != nil {
		return nil, false
	}

	buttons := make([]button.Button, 0, len(proposals))
	for _, p := range proposals {
		if p.Name == "" || p.Cmd == "" {
			continue
		}
		buttons = append(buttons, toButton(p))
	}
	return buttons, true
}

// toButton converts a parsed proposal, filling inputs from the command
// template when the model omitted them.
func toButton(p proposal) button.Button {
	b := button.Button{
		Name:          p.Name,
		Cmd:           p.Cmd,
		AIDescription: p.AIDescription,
		Inputs:        p.Inputs,
	}
	if len(b.Inputs) == 0 {
		b.Inputs = button.DefaultInputs(b.Cmd)
	}
	return b
}

// describeActivities renders tallies for the prompt, one per line.
func describeActivities(top []activity.Tally) string {
	lines := make([]string, 0, len(top))
	for _, t := range top {
		lines = append(lines, fmt.Sprintf("- %s (%d times)", t.Activity, t.Count))
	}
	return strings.Join(lines, "\n")
}

// ShellName reports the user's shell for prompt context: cmd on
// Windows, otherwise the basename of $SHELL, defaulting to sh.
func ShellName() string {
	if runtime.GOOS == "windows" {
		return "cmd"
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		return filepath.Base(shell)
	}
	return "sh"
}
