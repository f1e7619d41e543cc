// Package activity provides the append-only activity log and its aggregation.
//
// Editor and agent hooks append one line per event; the aggregator turns
// the raw log into a frequency-ranked list of distinct activities that
// feeds button suggestion.
package activity

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gorewood/lanyard/internal/output"
)

// LogFileName is the activity log file inside the workspace directory.
const LogFileName = "activity.log"

// Type classifies an activity event.
type Type string

// Recognized activity types.
const (
	TypeSave    Type = "Save"
	TypeCreate  Type = "Create"
	TypeDelete  Type = "Delete"
	TypeRename  Type = "Rename"
	TypeCommand Type = "Command"
)

// knownTypes maps lowercased names to types for parsing.
var knownTypes = map[string]Type{
	"save":    TypeSave,
	"create":  TypeCreate,
	"delete":  TypeDelete,
	"rename":  TypeRename,
	"command": TypeCommand,
}

// ParseType resolves a type name case-insensitively.
func ParseType(s string) (Type, error) {
	if t, ok := knownTypes[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return "", output.NewUserError("unknown activity type: " + s +
		" (expected Save, Create, Delete, Rename, or Command)")
}

// Log is an append-only activity log backed by a single file.
// Each line has the format "<RFC3339 timestamp> | <Type>: <Detail>".
type Log struct {
	path string
	now  func() time.Time
}

// NewLog creates a Log for the given file path.
func NewLog(path string) *Log {
	return &Log{path: path, now: time.Now}
}

// Path returns the log file path.
func (l *Log) Path() string {
	return l.path
}

// Append records one activity event as a single whole-line write.
// Newlines inside the detail are folded to spaces to keep the
// line-per-event format intact.
func (l *Log) Append(t Type, detail string) error {
	detail = strings.ReplaceAll(detail, "\n", " ")
	line := fmt.Sprintf("%s | %s: %s\n", l.now().UTC().Format(time.RFC3339), t, detail)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to open activity log", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(line); err != nil {
		return output.NewSystemErrorWithCause("failed to append to activity log", err)
	}
	return nil
}

// Read returns the full log text. A missing file is an empty log, not an error.
func (l *Log) Read() (string, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", output.NewSystemErrorWithCause("failed to read activity log", err)
	}
	return string(data), nil
}

// RenameDetail renders a rename event payload as "<old> to <new>".
func RenameDetail(oldPath, newPath string) string {
	return oldPath + " to " + newPath
}
