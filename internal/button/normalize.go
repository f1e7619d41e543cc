package button

import (
	"regexp"
	"strings"
)

// anyPlaceholder matches any braced token, not just valid identifiers,
// so commands differing only in placeholder naming compare equal.
var anyPlaceholder = regexp.MustCompile(`\{[^{}]+\}`)

// whitespaceRun matches one or more whitespace characters.
var whitespaceRun = regexp.MustCompile(`\s+`)

// quoteStripper removes single, double, and backtick quotes.
var quoteStripper = strings.NewReplacer(`'`, "", `"`, "", "`", "")

// Normalize canonicalizes a command string for comparison: placeholder
// tokens fold to {VAR}, quotes are stripped, whitespace runs collapse to
// one space, everything is lowercased and trimmed. The result is used
// only for equality checks, never for execution or storage.
//
// Normalize is idempotent.
func Normalize(cmd string) string {
	s := anyPlaceholder.ReplaceAllString(cmd, "{VAR}")
	s = quoteStripper.Replace(s)
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.ToLower(s)
	return strings.TrimSpace(s)
}
