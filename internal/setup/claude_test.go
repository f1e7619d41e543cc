package setup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func hookFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "hooks", "post_tool_use.sh")
}

func TestInstallSectionFreshFile(t *testing.T) {
	path := hookFile(t)

	if err := InstallSection(path); err != nil {
		t.Fatalf("InstallSection() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(content)
	if !strings.HasPrefix(text, "#!/bin/bash") {
		t.Error("hook is missing the shebang line")
	}
	if !strings.Contains(text, HookMarkerBegin) || !strings.Contains(text, HookMarkerEnd) {
		t.Error("hook is missing the section markers")
	}
	if !strings.Contains(text, "lanyard track hook") {
		t.Error("hook does not invoke lanyard track")
	}
	if !IsSectionInstalled(path) {
		t.Error("IsSectionInstalled() = false after install")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&0o100 == 0 {
		t.Error("hook is not executable")
	}
}

func TestInstallSectionPreservesExistingContent(t *testing.T) {
	path := hookFile(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	existing := "#!/bin/bash\necho existing-hook\n"
	if err := os.WriteFile(path, []byte(existing), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := InstallSection(path); err != nil {
		t.Fatalf("InstallSection() error = %v", err)
	}

	content, _ := os.ReadFile(path)
	if !strings.Contains(string(content), "echo existing-hook") {
		t.Error("existing hook content was lost")
	}
	if !strings.Contains(string(content), HookMarkerBegin) {
		t.Error("section not added")
	}
}

func TestInstallSectionIsIdempotent(t *testing.T) {
	path := hookFile(t)

	if err := InstallSection(path); err != nil {
		t.Fatal(err)
	}
	if err := InstallSection(path); err != nil {
		t.Fatal(err)
	}

	content, _ := os.ReadFile(path)
	if got := strings.Count(string(content), HookMarkerBegin); got != 1 {
		t.Errorf("found %d section markers after reinstall, want 1", got)
	}
}

func TestRemoveSectionFromHook(t *testing.T) {
	path := hookFile(t)
	if err := InstallSection(path); err != nil {
		t.Fatal(err)
	}

	if err := RemoveSectionFromHook(path); err != nil {
		t.Fatalf("RemoveSectionFromHook() error = %v", err)
	}

	content, _ := os.ReadFile(path)
	if strings.Contains(string(content), HookMarkerBegin) {
		t.Error("section still present after removal")
	}
	if IsSectionInstalled(path) {
		t.Error("IsSectionInstalled() = true after removal")
	}
}

func TestRemoveSectionKeepsOtherContent(t *testing.T) {
	path := hookFile(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	existing := "#!/bin/bash\necho keep-me\n"
	if err := os.WriteFile(path, []byte(existing), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := InstallSection(path); err != nil {
		t.Fatal(err)
	}

	if err := RemoveSectionFromHook(path); err != nil {
		t.Fatal(err)
	}

	content, _ := os.ReadFile(path)
	if !strings.Contains(string(content), "echo keep-me") {
		t.Errorf("unrelated hook content lost:\n%s", content)
	}
}

func TestRemoveSectionMissingFile(t *testing.T) {
	if err := RemoveSectionFromHook(hookFile(t)); err != nil {
		t.Errorf("RemoveSectionFromHook() on missing file = %v, want nil", err)
	}
}

func TestRemoveSectionFromContent(t *testing.T) {
	content := "#!/bin/bash\necho before\n\n" + HookContent + "\n\necho after\n"

	got := RemoveSectionFromContent(content)
	if strings.Contains(got, "lanyard track") {
		t.Error("section body survived removal")
	}
	if !strings.Contains(got, "echo before") || !strings.Contains(got, "echo after") {
		t.Errorf("surrounding content lost:\n%s", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Error("removal left runs of blank lines")
	}
}
