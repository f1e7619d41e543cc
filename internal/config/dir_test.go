package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirExplicitOverride(t *testing.T) {
	t.Setenv("LANYARD_CONFIG_HOME", "/tmp/custom-lanyard")
	if got := Dir(); got != "/tmp/custom-lanyard" {
		t.Errorf("Dir() = %q", got)
	}
}

func TestDirXDG(t *testing.T) {
	t.Setenv("LANYARD_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	want := filepath.Join("/tmp/xdg", "lanyard")
	if got := Dir(); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestFindWorkspaceDir(t *testing.T) {
	root := t.TempDir()
	project := filepath.Join(root, "project")
	nested := filepath.Join(project, "src", "deep")
	if err := os.MkdirAll(filepath.Join(project, WorkspaceDirName), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	want := filepath.Join(project, WorkspaceDirName)
	if got := FindWorkspaceDir(nested); got != want {
		t.Errorf("FindWorkspaceDir(nested) = %q, want %q", got, want)
	}
	if got := FindWorkspaceDir(project); got != want {
		t.Errorf("FindWorkspaceDir(project) = %q, want %q", got, want)
	}
}

func TestFindWorkspaceDirNotFound(t *testing.T) {
	dir := t.TempDir()
	if got := FindWorkspaceDir(dir); got != "" {
		t.Errorf("FindWorkspaceDir() = %q, want empty", got)
	}
}

func TestFindWorkspaceDirIgnoresFiles(t *testing.T) {
	dir := t.TempDir()
	// A plain file named .lanyard is not a workspace.
	if err := os.WriteFile(filepath.Join(dir, WorkspaceDirName), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := FindWorkspaceDir(dir); got != "" {
		t.Errorf("FindWorkspaceDir() = %q, want empty for a file", got)
	}
}
