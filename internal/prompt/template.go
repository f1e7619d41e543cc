// Package prompt provides the prompt templates used for LLM-assisted
// button suggestion, duplicate detection, and scope classification.
// Templates are markdown files with YAML frontmatter, resolved
// project-local first, then user global, then built-in.
package prompt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/lanyard/internal/config"
)

// Template represents a prompt template with metadata and content.
type Template struct {
	// Metadata from frontmatter
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     int    `yaml:"version,omitempty"`

	// Template content (after frontmatter)
	Content string `yaml:"-"`

	// Source location for display: "built-in", "global", or "project"
	Source string `yaml:"-"`
}

// Load finds and loads a template by name.
// Resolution order: project-local → user global → built-in.
func Load(name string) (*Template, error) {
	if tmpl, err := loadFromDir(projectTemplatesDir(), name); err == nil {
		tmpl.Source = "project"
		return tmpl, nil
	}

	if tmpl, err := loadFromDir(globalTemplatesDir(), name); err == nil {
		tmpl.Source = "global"
		return tmpl, nil
	}

	if tmpl, err := loadBuiltin(name); err == nil {
		tmpl.Source = "built-in"
		return tmpl, nil
	}

	return nil, fmt.Errorf("prompt template %q not found", name)
}

// Render substitutes {{key}} variables in the template content.
func Render(tmpl *Template, vars map[string]string) string {
	result := tmpl.Content
	for key, val := range vars {
		result = strings.ReplaceAll(result, "{{"+key+"}}", val)
	}
	return result
}

// projectTemplatesDir returns the project-local templates directory,
// or "" when no project is open.
func projectTemplatesDir() string {
	dir := config.WorkspaceDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "prompts")
}

// globalTemplatesDir returns the user's global templates directory.
func globalTemplatesDir() string {
	dir := config.Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "prompts")
}

// loadFromDir attempts to load a template from a directory.
func loadFromDir(dir, name string) (*Template, error) {
	if dir == "" {
		return nil, errors.New("no directory")
	}

	path := filepath.Join(dir, name+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	return parseTemplate(string(data))
}

// parseTemplate parses a template from raw content with YAML frontmatter.
func parseTemplate(raw string) (*Template, error) {
	frontmatter, content := splitFrontmatter(raw)

	var tmpl Template
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &tmpl); err != nil {
			return nil, fmt.Errorf("invalid frontmatter: %w", err)
		}
	}

	tmpl.Content = strings.TrimSpace(content)
	return &tmpl, nil
}

// splitFrontmatter separates YAML frontmatter from content.
// Frontmatter is delimited by --- at the start and end.
func splitFrontmatter(raw string) (frontmatter, content string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "---") {
		return "", raw
	}

	rest := raw[3:]
	before, after, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", raw
	}

	return strings.TrimSpace(before), strings.TrimSpace(after)
}
