package suggest

import (
	"context"
	"strings"

	"github.com/gorewood/lanyard/internal/button"
	"github.com/gorewood/lanyard/internal/llm"
	"github.com/gorewood/lanyard/internal/prompt"
)

// IsGlobalSafe classifies whether a button may be stored at global
// scope. The classification is advisory: with no completer, a template
// failure, or a completion error it fails open to true.
//
// The model answers SAFE or UNSAFE. "UNSAFE" contains "SAFE" as a
// substring, so the negative token is checked first.
func IsGlobalSafe(ctx context.Context, completer llm.Completer, b button.Button) bool {
	if completer == nil {
		return true
	}

	tmpl, err := prompt.Load("scope")
	if err != nil {
		return true
	}

	rendered := prompt.Render(tmpl, map[string]string{
		"name":        b.Name,
		"cmd":         b.Cmd,
		"description": b.Description(),
	})

	resp, err := completer.Complete(ctx, llm.Request{Prompt: rendered})
	if err != nil {
		return true
	}

	answer := strings.ToUpper(strings.TrimSpace(resp.Content))
	if strings.Contains(answer, "UNSAFE") {
		return false
	}
	return strings.Contains(answer, "SAFE")
}
