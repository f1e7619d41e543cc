// Package button provides the button schema, validation, command
// normalization, and the per-scope button store.
package button

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"time"
)

// MaxNameLength is the upper bound for button names.
const MaxNameLength = 50

// idPrefix is the prefix for all button IDs.
const idPrefix = "bt_"

// Scope is the visibility tier of a button.
type Scope string

// Button scopes. Workspace buttons belong to the current project;
// global buttons are visible across all projects.
const (
	ScopeWorkspace Scope = "workspace"
	ScopeGlobal    Scope = "global"
)

// Input binds a display prompt to a placeholder token in the command.
type Input struct {
	Placeholder string `json:"placeholder"`
	Variable    string `json:"variable"`
}

// Button is a named shortcut binding a label to an executable command
// template. Scope is attached when loading from a scope's file and is
// never persisted inside the file itself.
type Button struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Cmd             string    `json:"cmd"`
	AIDescription   string    `json:"ai_description,omitempty"`
	UserDescription string    `json:"user_description,omitempty"`
	Inputs          []Input   `json:"inputs,omitempty"`
	ExecDir         string    `json:"exec_dir,omitempty"`
	ScriptFile      string    `json:"script_file,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	Scope Scope `json:"-"`
}

// placeholderToken matches {identifier} tokens in command templates.
var placeholderToken = regexp.MustCompile(`\{[A-Za-z_][A-Za-z0-9_]*\}`)

// Validate reports whether the button has the required fields.
// Returns "" when valid, or a human-readable reason.
func (b *Button) Validate() string {
	switch {
	case b.Name == "":
		return "name is empty"
	case len(b.Name) > MaxNameLength:
		return "name exceeds 50 characters"
	case b.Cmd == "":
		return "cmd is empty"
	}
	return ""
}

// Description returns the best available description text.
func (b *Button) Description() string {
	if b.UserDescription != "" {
		return b.UserDescription
	}
	return b.AIDescription
}

// Placeholders returns the distinct {identifier} tokens in cmd,
// in order of first appearance.
func Placeholders(cmd string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, tok := range placeholderToken.FindAllString(cmd, -1) {
		if !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// PruneInputs drops inputs whose variable no longer appears in cmd.
// Tokens in cmd that lack a matching input are left to be resolved by
// prompting at execution time.
func (b *Button) PruneInputs() {
	tokens := make(map[string]bool)
	for _, tok := range Placeholders(b.Cmd) {
		tokens[tok] = true
	}

	kept := b.Inputs[:0]
	for _, in := range b.Inputs {
		if tokens[in.Variable] {
			kept = append(kept, in)
		}
	}
	b.Inputs = kept
}

// DefaultInputs builds one input per placeholder token in cmd, using the
// token itself as the display prompt.
func DefaultInputs(cmd string) []Input {
	var inputs []Input
	for _, tok := range Placeholders(cmd) {
		inputs = append(inputs, Input{Placeholder: tok[1 : len(tok)-1], Variable: tok})
	}
	return inputs
}

// GenerateID creates a stable button ID from its creation time and
// content. Format: bt_<ISO8601-timestamp>_<8-hex-hash-of-name+cmd>.
// Identity is assigned once at creation and survives later edits to
// name or cmd.
func GenerateID(name, cmd string, timestamp time.Time) string {
	sum := sha256.Sum256([]byte(name + "\x00" + cmd))
	return idPrefix + timestamp.UTC().Format(time.RFC3339) + "_" + hex.EncodeToString(sum[:4])
}
