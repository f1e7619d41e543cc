// Package suggest turns developer activity and free-text descriptions
// into button proposals, and guards insertion with duplicate detection
// and scope-safety classification. Every AI-assisted decision in this
// package fails open: an unavailable or erroring model backend is
// treated as "unique" / "safe" so it never blocks the user's workflow.
package suggest

import (
	"context"
	"fmt"
	"strings"

	"github.com/gorewood/lanyard/internal/button"
	"github.com/gorewood/lanyard/internal/llm"
	"github.com/gorewood/lanyard/internal/prompt"
)

// uniqueAnswer is the model's verdict that no duplicate exists.
const uniqueAnswer = "UNIQUE"

// Detector decides whether a candidate button duplicates an existing
// one. Stage 1 is a deterministic normalized-command comparison; stage 2
// asks the model for a semantic match and only runs when stage 1 finds
// nothing. The relation is directional: only candidate-against-existing
// is ever computed.
type Detector struct {
	completer llm.Completer // nil means no AI stage
}

// NewDetector creates a Detector. completer may be nil, which disables
// the semantic stage (stage 1 still runs).
func NewDetector(completer llm.Completer) *Detector {
	return &Detector{completer: completer}
}

// IsDuplicate returns the name of the existing button the candidate
// duplicates, or "" when it is unique.
//
// Scope filtering: a global candidate is compared only against global
// buttons; a workspace candidate is compared against the full set,
// since global buttons already shadow workspace ones.
func (d *Detector) IsDuplicate(ctx context.Context, candidate button.Button, existing []button.Button, target button.Scope) string {
	pool := filterByTarget(existing, target)
	if len(pool) == 0 {
		return ""
	}

	// Stage 1: authoritative textual match, short-circuits stage 2.
	candidateNorm := button.Normalize(candidate.Cmd)
	for _, b := range pool {
		if button.Normalize(b.Cmd) == candidateNorm {
			return b.Name
		}
	}

	return d.semanticMatch(ctx, candidate, pool, target)
}

// DetectFunc adapts the detector to the store's injection point.
func (d *Detector) DetectFunc(ctx context.Context) button.DetectFunc {
	return func(candidate button.Button, existing []button.Button, target button.Scope) string {
		return d.IsDuplicate(ctx, candidate, existing, target)
	}
}

// semanticMatch runs the AI stage. Any failure (no client, template
// error, completion error) fails open to "unique".
func (d *Detector) semanticMatch(ctx context.Context, candidate button.Button, pool []button.Button, target button.Scope) string {
	if d.completer == nil {
		return ""
	}

	tmpl, err := prompt.Load("dedup")
	if err != nil {
		return ""
	}

	rendered := prompt.Render(tmpl, map[string]string{
		"scope":                 string(target),
		"candidate_name":        candidate.Name,
		"candidate_cmd":         candidate.Cmd,
		"candidate_description": candidate.Description(),
		"buttons":               describeButtons(pool),
	})

	resp, err := d.completer.Complete(ctx, llm.Request{Prompt: rendered})
	if err != nil {
		return ""
	}

	answer := strings.TrimSpace(resp.Content)
	if strings.EqualFold(answer, uniqueAnswer) || strings.Contains(answer, "NO") {
		return ""
	}
	return answer
}

// filterByTarget selects the comparison pool for a target scope.
func filterByTarget(existing []button.Button, target button.Scope) []button.Button {
	if target != button.ScopeGlobal {
		return existing
	}

	var pool []button.Button
	for _, b := range existing {
		if b.Scope == button.ScopeGlobal {
			pool = append(pool, b)
		}
	}
	return pool
}

// describeButtons renders the comparison pool for the prompt, one
// button per line.
func describeButtons(pool []button.Button) string {
	lines := make([]string, 0, len(pool))
	for _, b := range pool {
		line := fmt.Sprintf("- %s [%s]: %s", b.Name, b.Scope, b.Cmd)
		if desc := b.Description(); desc != "" {
			line += " (" + desc + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
