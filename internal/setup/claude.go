// Package setup installs and removes the editor integration that feeds
// the activity log. The integration is a Claude Code hook script that
// forwards tool events to 'lanyard track hook'.
package setup

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gorewood/lanyard/internal/output"
)

const (
	// HookMarkerBegin marks the start of lanyard-managed content.
	HookMarkerBegin = "# BEGIN lanyard"
	// HookMarkerEnd marks the end of lanyard-managed content.
	HookMarkerEnd = "# END lanyard"
)

// HookContent is the hook script section that forwards tool events.
// The hook receives the event payload on stdin and must never block the
// editor operation, so failures are swallowed.
var HookContent = HookMarkerBegin + `
# Lanyard activity capture
if command -v lanyard >/dev/null 2>&1; then
  lanyard track hook 2>/dev/null || true
fi
` + HookMarkerEnd

// ResolveHookPath determines the hook path based on scope.
// If project is true, returns a project-local path; otherwise the
// global path. The second return names the scope for display.
func ResolveHookPath(project bool) (string, string, error) {
	if project {
		cwd, err := os.Getwd()
		if err != nil {
			return "", "", output.NewSystemErrorWithCause("failed to get working directory", err)
		}
		return filepath.Join(cwd, ".claude", "hooks", "post_tool_use.sh"), "project", nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", output.NewSystemErrorWithCause("failed to get home directory", err)
	}
	return filepath.Join(home, ".claude", "hooks", "post_tool_use.sh"), "global", nil
}

// IsSectionInstalled checks if the lanyard section exists in a hook file.
func IsSectionInstalled(hookPath string) bool {
	content, err := os.ReadFile(hookPath)
	if err != nil {
		return false
	}
	return strings.Contains(string(content), HookMarkerBegin)
}

// InstallSection adds or updates the lanyard section in a hook file,
// preserving any existing non-lanyard content.
func InstallSection(hookPath string) error {
	if err := os.MkdirAll(filepath.Dir(hookPath), 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create hook directory", err)
	}

	var content string
	existing, err := os.ReadFile(hookPath)
	if err == nil {
		content = RemoveSectionFromContent(string(existing))
	} else if !os.IsNotExist(err) {
		return output.NewSystemErrorWithCause("failed to read hook file", err)
	}

	if !strings.HasPrefix(content, "#!") {
		content = "#!/bin/bash\n" + content
	}

	content = strings.TrimRight(content, "\n") + "\n\n" + HookContent + "\n"

	// #nosec G306 -- hook needs execute permission
	if err := os.WriteFile(hookPath, []byte(content), 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to write hook file", err)
	}

	return nil
}

// RemoveSectionFromHook removes the lanyard section from a hook file.
func RemoveSectionFromHook(hookPath string) error {
	content, err := os.ReadFile(hookPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return output.NewSystemErrorWithCause("failed to read hook file", err)
	}

	newContent := RemoveSectionFromContent(string(content))

	cleaned := strings.TrimSpace(strings.TrimPrefix(newContent, "#!/bin/bash"))
	if cleaned == "" {
		newContent = "#!/bin/bash\n"
	}

	// #nosec G306 -- hook needs execute permission
	if err := os.WriteFile(hookPath, []byte(newContent), 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to write hook file", err)
	}

	return nil
}

// RemoveSectionFromContent removes the lanyard section from a content string.
func RemoveSectionFromContent(content string) string {
	lines := strings.Split(content, "\n")
	var result []string
	inSection := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, HookMarkerBegin) {
			inSection = true
			continue
		}
		if strings.HasPrefix(trimmed, HookMarkerEnd) {
			inSection = false
			continue
		}
		if !inSection {
			result = append(result, line)
		}
	}

	finalContent := strings.Join(result, "\n")
	for strings.Contains(finalContent, "\n\n\n") {
		finalContent = strings.ReplaceAll(finalContent, "\n\n\n", "\n\n")
	}

	return strings.TrimRight(finalContent, "\n") + "\n"
}
