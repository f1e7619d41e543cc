package activity

import (
	"sort"
	"strings"
	"time"
)

// Tally is one distinct activity string with its occurrence count.
// The activity string is the exact "Type: Detail" rendering of the event.
type Tally struct {
	Activity string `json:"activity"`
	Count    int    `json:"count"`
}

// Aggregate parses the raw log text and counts identical activities.
// Malformed lines are ignored silently. The returned slice preserves
// first-encountered order; an empty or all-malformed log yields an
// empty result, never an error.
func Aggregate(text string) []Tally {
	counts := make(map[string]int)
	var order []string

	for _, line := range strings.Split(text, "\n") {
		act, ok := parseLine(line)
		if !ok {
			continue
		}
		if counts[act] == 0 {
			order = append(order, act)
		}
		counts[act]++
	}

	tallies := make([]Tally, 0, len(order))
	for _, act := range order {
		tallies = append(tallies, Tally{Activity: act, Count: counts[act]})
	}
	return tallies
}

// TopN returns the n most frequent tallies, ties broken by
// first-encountered order.
func TopN(tallies []Tally, n int) []Tally {
	if n <= 0 {
		return nil
	}

	ranked := make([]Tally, len(tallies))
	copy(ranked, tallies)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// parseLine extracts the "Type: Detail" activity string from one log line.
// A well-formed line is "<RFC3339 timestamp> | <Type>: <Detail>" with a
// parseable timestamp and non-empty type and detail.
func parseLine(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}

	timestamp, rest, found := strings.Cut(line, " | ")
	if !found {
		return "", false
	}
	if _, err := time.Parse(time.RFC3339, strings.TrimSpace(timestamp)); err != nil {
		return "", false
	}

	typeName, detail, found := strings.Cut(rest, ": ")
	if !found || strings.TrimSpace(typeName) == "" || strings.TrimSpace(detail) == "" {
		return "", false
	}

	return strings.TrimSpace(rest), true
}
