package button

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gorewood/lanyard/internal/output"
)

// FileName is the button list file inside each scope's directory.
const FileName = "buttons.json"

// DetectFunc decides whether a candidate duplicates an existing button
// for the given target scope. Returns the name of the colliding button,
// or "" when the candidate is unique.
type DetectFunc func(candidate Button, existing []Button, target Scope) string

// DuplicateMatch records a candidate skipped as a duplicate.
type DuplicateMatch struct {
	Candidate string `json:"candidate"`
	Existing  string `json:"existing"`
}

// InvalidCandidate records a candidate rejected by validation.
type InvalidCandidate struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// AddSummary reports the outcome of one Add call.
type AddSummary struct {
	Added      int                `json:"added"`
	Duplicates []DuplicateMatch   `json:"duplicates,omitempty"`
	Invalid    []InvalidCandidate `json:"invalid,omitempty"`
}

// Store is the authoritative in-memory button collection for a session,
// partitioned by scope and written through to per-scope JSON files after
// every mutation. The persisted files are never read back except at Load.
type Store struct {
	globalPath    string
	workspacePath string // "" when no project is open
	buttons       []Button
	now           func() time.Time
}

// NewStore creates a store over the given persisted file paths.
// workspacePath may be empty when no project is open; workspace
// operations then fail with a user error.
func NewStore(globalPath, workspacePath string) *Store {
	return &Store{
		globalPath:    globalPath,
		workspacePath: workspacePath,
		now:           time.Now,
	}
}

// HasWorkspace reports whether a project is open.
func (s *Store) HasWorkspace() bool {
	return s.workspacePath != ""
}

// Load replaces the in-memory list wholesale from persisted storage:
// global buttons first, then workspace buttons when a project is open.
// A missing file means zero buttons for that scope, not an error.
func (s *Store) Load() error {
	loaded, err := readScopeFile(s.globalPath, ScopeGlobal)
	if err != nil {
		return err
	}

	if s.workspacePath != "" {
		workspace, err := readScopeFile(s.workspacePath, ScopeWorkspace)
		if err != nil {
			return err
		}
		loaded = append(loaded, workspace...)
	}

	s.buttons = loaded
	return nil
}

// Buttons returns a copy of the in-memory list.
func (s *Store) Buttons() []Button {
	out := make([]Button, len(s.buttons))
	copy(out, s.buttons)
	return out
}

// Scoped returns the buttons belonging to one scope.
func (s *Store) Scoped(scope Scope) []Button {
	var out []Button
	for _, b := range s.buttons {
		if b.Scope == scope {
			out = append(out, b)
		}
	}
	return out
}

// Find resolves a button by ID first, then by name.
func (s *Store) Find(ref string) (Button, bool) {
	for _, b := range s.buttons {
		if b.ID == ref {
			return b, true
		}
	}
	for _, b := range s.buttons {
		if b.Name == ref {
			return b, true
		}
	}
	return Button{}, false
}

// FindByNameCmd resolves a button by its visible (name, cmd) identity.
// This is a display-level convenience; ID is the real identity.
func (s *Store) FindByNameCmd(name, cmd string) (Button, bool) {
	for _, b := range s.buttons {
		if b.Name == name && b.Cmd == cmd {
			return b, true
		}
	}
	return Button{}, false
}

// Add validates, deduplicates, and appends candidates at the target
// scope, then writes the scope's list through to disk. Candidates are
// processed strictly in input order, and each is deduplicated against
// the in-memory set including earlier candidates from the same batch.
// An empty input or a batch with nothing accepted performs no
// persistence write.
//
// A write failure is returned alongside the summary; the in-memory
// mutation is not rolled back, so memory and disk may diverge until the
// next successful write or reload.
func (s *Store) Add(candidates []Button, scope Scope, detect DetectFunc) (*AddSummary, error) {
	summary := &AddSummary{}
	if len(candidates) == 0 {
		return summary, nil
	}

	if scope == ScopeWorkspace && s.workspacePath == "" {
		return summary, output.NewUserError("no project open: run 'lanyard init' first")
	}

	for _, c := range candidates {
		if reason := c.Validate(); reason != "" {
			summary.Invalid = append(summary.Invalid, InvalidCandidate{Name: c.Name, Reason: reason})
			continue
		}

		if detect != nil {
			if existing := detect(c, s.buttons, scope); existing != "" {
				summary.Duplicates = append(summary.Duplicates, DuplicateMatch{
					Candidate: c.Name,
					Existing:  existing,
				})
				continue
			}
		}

		c.Scope = scope
		if c.CreatedAt.IsZero() {
			c.CreatedAt = s.now()
		}
		if c.ID == "" {
			c.ID = GenerateID(c.Name, c.Cmd, c.CreatedAt)
		}
		c.PruneInputs()

		s.buttons = append(s.buttons, c)
		summary.Added++
	}

	if summary.Added == 0 {
		return summary, nil
	}

	return summary, s.persist(scope)
}

// Update replaces the button with the same ID and writes through.
// When the edit moved the button across scopes, both scope files are
// rewritten.
func (s *Store) Update(updated Button) error {
	for i, b := range s.buttons {
		if b.ID != updated.ID {
			continue
		}

		updated.PruneInputs()
		s.buttons[i] = updated

		if err := s.persist(updated.Scope); err != nil {
			return err
		}
		if b.Scope != updated.Scope {
			return s.persist(b.Scope)
		}
		return nil
	}
	return output.NewUserError("button not found: " + updated.ID)
}

// Delete removes the button with the given ID and rewrites the owning
// scope's file. There is no soft-delete or undo.
func (s *Store) Delete(id string) error {
	for i, b := range s.buttons {
		if b.ID != id {
			continue
		}
		s.buttons = append(s.buttons[:i], s.buttons[i+1:]...)
		return s.persist(b.Scope)
	}
	return output.NewUserError("button not found: " + id)
}

// persist writes the whole list for one scope to its file atomically.
func (s *Store) persist(scope Scope) error {
	path := s.globalPath
	if scope == ScopeWorkspace {
		path = s.workspacePath
	}
	if path == "" {
		return output.NewUserError("no project open: run 'lanyard init' first")
	}

	data, err := json.MarshalIndent(s.Scoped(scope), "", "  ")
	if err != nil {
		return output.NewSystemErrorWithCause("failed to serialize buttons", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create storage directory", err)
	}

	if err := atomicWrite(path, data); err != nil {
		return output.NewSystemErrorWithCause("failed to write "+path, err)
	}
	return nil
}

// readScopeFile loads one scope's button list and tags each button with
// the scope it was loaded from.
func readScopeFile(path string, scope Scope) ([]Button, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, output.NewSystemErrorWithCause("failed to read "+path, err)
	}

	var buttons []Button
	if err := json.Unmarshal(data, &buttons); err != nil {
		return nil, output.NewUserError("failed to parse " + path + ": " + err.Error())
	}

	for i := range buttons {
		buttons[i].Scope = scope
	}
	return buttons, nil
}

// atomicWrite writes data to path using write-to-temp-then-rename.
// The temp file is created in the same directory as path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
