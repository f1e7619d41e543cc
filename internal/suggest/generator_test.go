package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/gorewood/lanyard/internal/activity"
)

func testGenerator(completer *stubCompleter) *Generator {
	g := &Generator{osName: "linux", shell: "bash"}
	if completer != nil {
		g.completer = completer
	}
	return g
}

func TestFromActivityParsesProposals(t *testing.T) {
	completer := &stubCompleter{content: `Here you go:
[
  {"name": "Run Tests", "cmd": "npm test", "ai_description": "Run the suite"},
  {"name": "Deploy", "cmd": "deploy {env}", "ai_description": "Deploy somewhere"}
]`}
	g := testGenerator(completer)

	got := g.FromActivity(context.Background(), nil, 5)
	if len(got) != 2 {
		t.Fatalf("FromActivity() returned %d buttons, want 2", len(got))
	}
	if got[0].Name != "Run Tests" || got[0].Cmd != "npm test" {
		t.Errorf("FromActivity()[0] = %+v", got[0])
	}
	// Inputs are derived from the template when the model omits them.
	if len(got[1].Inputs) != 1 || got[1].Inputs[0].Variable != "{env}" {
		t.Errorf("FromActivity()[1].Inputs = %v, want derived {env} input", got[1].Inputs)
	}
}

func TestFromActivityDropsIncompleteProposals(t *testing.T) {
	completer := &stubCompleter{content: `[
  {"name": "", "cmd": "ls", "ai_description": "x"},
  {"name": "No Cmd", "ai_description": "x"},
  {"name": "Good", "cmd": "ls", "ai_description": "x"}
]`}
	g := testGenerator(completer)

	got := g.FromActivity(context.Background(), nil, 5)
	if len(got) != 1 || got[0].Name != "Good" {
		t.Errorf("FromActivity() = %v, want only the complete proposal", got)
	}
}

func TestFromActivityFallsBack(t *testing.T) {
	top := []activity.Tally{{Activity: "Command: git commit", Count: 2}}

	tests := []struct {
		name      string
		completer *stubCompleter
	}{
		{name: "no model", completer: nil},
		{name: "completion error", completer: &stubCompleter{err: errors.New("down")}},
		{name: "unparsable response", completer: &stubCompleter{content: "I cannot do that"}},
		{name: "invalid json in array", completer: &stubCompleter{content: "[{broken]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGenerator(tt.completer)
			got := g.FromActivity(context.Background(), top, 5)
			if len(got) == 0 {
				t.Fatal("FromActivity() fallback returned nothing")
			}
			if got[0].Name != "Git Commit" {
				t.Errorf("FromActivity() fallback = %q, want keyword match Git Commit", got[0].Name)
			}
		})
	}
}

func TestFromDescription(t *testing.T) {
	tests := []struct {
		name      string
		completer *stubCompleter
		wantOK    bool
		wantName  string
	}{
		{
			name: "complete proposal",
			completer: &stubCompleter{content: "```json\n" +
				`{"name": "Docs", "cmd": "make docs", "ai_description": "Build the docs"}` + "\n```"},
			wantOK:   true,
			wantName: "Docs",
		},
		{
			name:      "missing description rejected",
			completer: &stubCompleter{content: `{"name": "Docs", "cmd": "make docs"}`},
			wantOK:    false,
		},
		{
			name:      "no model",
			completer: nil,
			wantOK:    false,
		},
		{
			name:      "completion error",
			completer: &stubCompleter{err: errors.New("down")},
			wantOK:    false,
		},
		{
			name:      "no json in response",
			completer: &stubCompleter{content: "sorry"},
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGenerator(tt.completer)
			got, ok := g.FromDescription(context.Background(), "build the docs")
			if ok != tt.wantOK {
				t.Fatalf("FromDescription() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.Name != tt.wantName {
				t.Errorf("FromDescription().Name = %q, want %q", got.Name, tt.wantName)
			}
		})
	}
}

func TestDescribeActivities(t *testing.T) {
	top := []activity.Tally{
		{Activity: "Command: npm test", Count: 3},
		{Activity: "Save: main.go", Count: 1},
	}

	got := describeActivities(top)
	want := "- Command: npm test (3 times)\n- Save: main.go (1 times)"
	if got != want {
		t.Errorf("describeActivities() = %q, want %q", got, want)
	}
}
