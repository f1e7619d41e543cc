package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/gorewood/lanyard/internal/button"
	"github.com/gorewood/lanyard/internal/llm"
)

// stubCompleter returns a canned response or error.
type stubCompleter struct {
	content string
	err     error
	called  bool
}

func (s *stubCompleter) Complete(_ context.Context, _ llm.Request) (*llm.Response, error) {
	s.called = true
	if s.err != nil {
		return nil, s.err
	}
	return &llm.Response{Content: s.content, Model: "stub"}, nil
}

func existingButtons() []button.Button {
	return []button.Button{
		{Name: "Run Tests", Cmd: "npm test", Scope: button.ScopeWorkspace},
		{Name: "Global Build", Cmd: "make build", Scope: button.ScopeGlobal},
	}
}

func TestDetectorStageOneNormalizedMatch(t *testing.T) {
	// The model must not be consulted when the textual stage matches.
	completer := &stubCompleter{content: "Run Tests"}
	d := NewDetector(completer)

	candidate := button.Button{Name: "Tests", Cmd: "npm   test"}
	got := d.IsDuplicate(context.Background(), candidate, existingButtons(), button.ScopeWorkspace)

	if got != "Run Tests" {
		t.Errorf("IsDuplicate() = %q, want Run Tests", got)
	}
	if completer.called {
		t.Error("stage 1 match should short-circuit the semantic stage")
	}
}

func TestDetectorEmptyPool(t *testing.T) {
	completer := &stubCompleter{content: "whatever"}
	d := NewDetector(completer)

	candidate := button.Button{Name: "X", Cmd: "ls"}
	if got := d.IsDuplicate(context.Background(), candidate, nil, button.ScopeWorkspace); got != "" {
		t.Errorf("IsDuplicate() with empty pool = %q, want unique", got)
	}
	if completer.called {
		t.Error("empty pool should not consult the model")
	}
}

func TestDetectorGlobalTargetFiltersPool(t *testing.T) {
	// A global candidate matching only a workspace button is unique.
	d := NewDetector(nil)

	candidate := button.Button{Name: "Tests", Cmd: "npm test"}
	got := d.IsDuplicate(context.Background(), candidate, existingButtons(), button.ScopeGlobal)
	if got != "" {
		t.Errorf("IsDuplicate() at global scope = %q, want unique (workspace pool excluded)", got)
	}

	// But a global match is still reported.
	candidate = button.Button{Name: "Builder", Cmd: "make build"}
	got = d.IsDuplicate(context.Background(), candidate, existingButtons(), button.ScopeGlobal)
	if got != "Global Build" {
		t.Errorf("IsDuplicate() = %q, want Global Build", got)
	}
}

func TestDetectorSemanticStage(t *testing.T) {
	tests := []struct {
		name      string
		completer llm.Completer
		want      string
	}{
		{
			name:      "nil completer is unique",
			completer: nil,
			want:      "",
		},
		{
			name:      "model says UNIQUE",
			completer: &stubCompleter{content: "UNIQUE"},
			want:      "",
		},
		{
			name:      "model says unique lowercased",
			completer: &stubCompleter{content: "unique"},
			want:      "",
		},
		{
			name:      "model answer containing NO is unique",
			completer: &stubCompleter{content: "NO duplicate found"},
			want:      "",
		},
		{
			name:      "model names the duplicate",
			completer: &stubCompleter{content: "Run Tests"},
			want:      "Run Tests",
		},
		{
			name:      "completion error fails open",
			completer: &stubCompleter{err: errors.New("backend down")},
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDetector(tt.completer)
			candidate := button.Button{Name: "Test Runner", Cmd: "yarn test"}

			got := d.IsDuplicate(context.Background(), candidate, existingButtons(), button.ScopeWorkspace)
			if got != tt.want {
				t.Errorf("IsDuplicate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectFuncAdapter(t *testing.T) {
	d := NewDetector(nil)
	detect := d.DetectFunc(context.Background())

	candidate := button.Button{Name: "Tests", Cmd: "npm test"}
	if got := detect(candidate, existingButtons(), button.ScopeWorkspace); got != "Run Tests" {
		t.Errorf("DetectFunc() = %q, want Run Tests", got)
	}
}
