package suggest

import "strings"

// stripCodeFences removes markdown code fence lines from LLM output.
// Fence markers (``` with an optional language tag) are dropped; the
// fenced content is kept.
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// extractJSONArray returns the first well-formed bracketed [...]
// substring of s, tracking bracket depth and skipping brackets inside
// JSON string literals. Returns false when no balanced array is found.
func extractJSONArray(s string) (string, bool) {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
			// brackets inside strings don't count
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// extractJSONObject returns the substring between the first '{' and the
// last '}' after code fences have been stripped. This is deliberately
// loose: single-object responses are small and the surrounding prose is
// the only thing being trimmed away.
func extractJSONObject(s string) (string, bool) {
	s = stripCodeFences(s)
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
