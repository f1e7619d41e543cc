package main

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gorewood/lanyard/internal/activity"
	"github.com/gorewood/lanyard/internal/button"
	"github.com/gorewood/lanyard/internal/config"
	"github.com/gorewood/lanyard/internal/llm"
	"github.com/gorewood/lanyard/internal/output"
	"github.com/gorewood/lanyard/internal/runner"
)

// buttonPaths resolves the global and workspace button file paths.
// The workspace path is empty when no .lanyard directory exists in or
// above the current directory.
func buttonPaths() (globalPath, workspacePath string) {
	if dir := config.Dir(); dir != "" {
		globalPath = filepath.Join(dir, button.FileName)
	}
	if ws := config.WorkspaceDir(); ws != "" {
		workspacePath = filepath.Join(ws, button.FileName)
	}
	return globalPath, workspacePath
}

// openStore builds a store over the resolved button files and loads it.
func openStore() (*button.Store, error) {
	store := button.NewStore(buttonPaths())
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

// openLog returns the workspace activity log, or nil when the current
// directory is not inside an initialized workspace.
func openLog() *activity.Log {
	ws := config.WorkspaceDir()
	if ws == "" {
		return nil
	}
	return activity.NewLog(filepath.Join(ws, activity.LogFileName))
}

// newCompleter resolves a model client from the environment. Returns nil
// when no model is configured; callers degrade to deterministic behavior.
func newCompleter() llm.Completer {
	client, err := llm.FromEnv()
	if err != nil {
		return nil
	}
	return client
}

// stdinPrompter builds a line-oriented prompter over the command's streams.
// An empty line or EOF cancels the prompt.
func stdinPrompter(in io.Reader, out io.Writer) runner.Prompter {
	reader := bufio.NewReader(in)
	return func(label string) (string, bool) {
		fmt.Fprintf(out, "%s: ", label)
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if err != nil && line == "" {
			return "", false
		}
		if line == "" {
			return "", false
		}
		return line, true
	}
}

// parseScope validates a --scope flag value.
func parseScope(value string) (button.Scope, error) {
	switch value {
	case "workspace", "":
		return button.ScopeWorkspace, nil
	case "global":
		return button.ScopeGlobal, nil
	default:
		return "", output.NewUserError(fmt.Sprintf("invalid scope %q: must be 'workspace' or 'global'", value))
	}
}
