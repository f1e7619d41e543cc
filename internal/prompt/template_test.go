package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinsExist(t *testing.T) {
	names := Builtins()
	if len(names) == 0 {
		t.Fatal("Builtins() returned nothing")
	}

	for _, want := range []string{"suggest", "describe", "dedup", "scope"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("builtin template %q missing from %v", want, names)
		}
	}
}

func TestLoadBuiltin(t *testing.T) {
	for _, name := range []string{"suggest", "describe", "dedup", "scope"} {
		t.Run(name, func(t *testing.T) {
			tmpl, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q) error = %v", name, err)
			}
			if tmpl.Name == "" {
				t.Error("template has no name in frontmatter")
			}
			if tmpl.Content == "" {
				t.Error("template has no content")
			}
			if tmpl.Source != "built-in" {
				t.Errorf("Source = %q, want built-in", tmpl.Source)
			}
		})
	}
}

func TestLoadUnknownTemplate(t *testing.T) {
	if _, err := Load("nonexistent"); err == nil {
		t.Fatal("Load() of unknown template should fail")
	}
}

func TestLoadGlobalOverride(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("LANYARD_CONFIG_HOME", configDir)

	dir := filepath.Join(configDir, "prompts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "---\nname: suggest\ndescription: custom\n---\nMy custom prompt {{activities}}"
	if err := os.WriteFile(filepath.Join(dir, "suggest.md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tmpl, err := Load("suggest")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tmpl.Source != "global" {
		t.Errorf("Source = %q, want global override to win over built-in", tmpl.Source)
	}
	if !strings.Contains(tmpl.Content, "My custom prompt") {
		t.Errorf("Content = %q", tmpl.Content)
	}
}

func TestRender(t *testing.T) {
	tmpl := &Template{Content: "OS: {{os}}, shell: {{shell}}, again: {{os}}"}

	got := Render(tmpl, map[string]string{"os": "linux", "shell": "bash"})
	want := "OS: linux, shell: bash, again: linux"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderLeavesUnknownKeys(t *testing.T) {
	tmpl := &Template{Content: "keep {{unknown}} as is"}

	got := Render(tmpl, map[string]string{"os": "linux"})
	if got != "keep {{unknown}} as is" {
		t.Errorf("Render() = %q", got)
	}
}

func TestSplitFrontmatter(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantMatter  string
		wantContent string
	}{
		{
			name:        "with frontmatter",
			raw:         "---\nname: x\n---\nbody text",
			wantMatter:  "name: x",
			wantContent: "body text",
		},
		{
			name:        "no frontmatter",
			raw:         "just body",
			wantMatter:  "",
			wantContent: "just body",
		},
		{
			name:        "unterminated frontmatter",
			raw:         "---\nname: x\nbody",
			wantMatter:  "",
			wantContent: "---\nname: x\nbody",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matter, content := splitFrontmatter(tt.raw)
			if matter != tt.wantMatter || content != tt.wantContent {
				t.Errorf("splitFrontmatter() = (%q, %q), want (%q, %q)",
					matter, content, tt.wantMatter, tt.wantContent)
			}
		})
	}
}
