package suggest

import (
	"strings"

	"github.com/gorewood/lanyard/internal/activity"
	"github.com/gorewood/lanyard/internal/button"
)

// maxFallbackSuggestions caps the deterministic fallback output.
const maxFallbackSuggestions = 5

// fallbackRule maps activity keywords to a canned button catalog.
type fallbackRule struct {
	keywords []string
	buttons  []button.Button
}

// fallbackRules are checked in order for each activity; the catalog is
// fixed so the fallback path is deterministic and side-effect free.
var fallbackRules = []fallbackRule{
	{
		keywords: []string{"git", "commit"},
		buttons: []button.Button{
			{
				Name:          "Git Commit",
				Cmd:           `git commit -m "{message}"`,
				AIDescription: "Commit staged changes with a message",
				Inputs:        []button.Input{{Placeholder: "Commit message", Variable: "{message}"}},
			},
			{
				Name:          "Git Status",
				Cmd:           "git status",
				AIDescription: "Show working tree status",
			},
		},
	},
	{
		keywords: []string{"npm", "build"},
		buttons: []button.Button{
			{
				Name:          "Build",
				Cmd:           "npm run build",
				AIDescription: "Run the project build",
			},
		},
	},
	{
		keywords: []string{"test"},
		buttons: []button.Button{
			{
				Name:          "Run Tests",
				Cmd:           "npm test",
				AIDescription: "Run the test suite",
			},
		},
	},
	{
		keywords: []string{"save"},
		buttons: []button.Button{
			{
				Name:          "Stage All",
				Cmd:           "git add -A",
				AIDescription: "Stage all modified files",
			},
		},
	},
}

// defaultSuggestions is emitted when no keyword matches any activity.
var defaultSuggestions = []button.Button{
	{Name: "Build", Cmd: "npm run build", AIDescription: "Run the project build"},
	{Name: "Run Tests", Cmd: "npm test", AIDescription: "Run the test suite"},
	{
		Name:          "Git Commit",
		Cmd:           `git commit -m "{message}"`,
		AIDescription: "Commit staged changes with a message",
		Inputs:        []button.Input{{Placeholder: "Commit message", Variable: "{message}"}},
	},
}

// Fallback generates button suggestions without any AI dependency by
// scanning activity strings for known keywords. Activities are scanned
// in order; the result is capped at 5 buttons and deduplicated by
// normalized command. With no keyword match it returns a fixed
// build/test/commit trio.
func Fallback(top []activity.Tally) []button.Button {
	var out []button.Button
	seen := make(map[string]bool)

	for _, tally := range top {
		lowered := strings.ToLower(tally.Activity)
		for _, rule := range fallbackRules {
			if !matchesAny(lowered, rule.keywords) {
				continue
			}
			for _, b := range rule.buttons {
				if len(out) >= maxFallbackSuggestions {
					return out
				}
				key := button.Normalize(b.Cmd)
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, b)
			}
		}
	}

	if len(out) == 0 {
		out = append(out, defaultSuggestions...)
	}
	return out
}

// matchesAny reports whether s contains any of the keywords.
func matchesAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
