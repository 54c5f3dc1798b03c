// Package sql provides utilities for working with SQL recovered from
// free-form generated text.
package sql

import (
	"strings"
)

const (
	fence    = "```"
	sqlFence = "```sql"
)

// statementKeywords are the statement openers the extractor recognizes.
var statementKeywords = []string{"SELECT", "WITH", "INSERT", "UPDATE", "DELETE", "CREATE"}

// explanationMarkers end line-scan capture when a generated response
// switches from SQL back to prose.
var explanationMarkers = []string{"Explanation", "This query"}

// Extract recovers a single executable SQL statement from raw generated
// text. Generation output format is not guaranteed, so extraction is a
// layered heuristic in strict priority order, first match wins:
//
//  1. A ```sql fenced block: the content strictly between the opening tag
//     and the next fence, trimmed. Only the first tagged fence counts.
//  2. A generic ``` fenced block whose content begins with a statement
//     keyword (case-insensitive).
//  3. A line scan over the whole text: capture starts at the first
//     keyword-led line and stops at a blank line or an explanation marker.
//
// The second return value is false when no path yields non-empty text.
// The result is never validated as syntactically complete SQL.
func Extract(raw string) (string, bool) {
	if strings.Contains(raw, sqlFence) {
		rest := strings.SplitN(raw, sqlFence, 2)[1]
		content := strings.TrimSpace(strings.SplitN(rest, fence, 2)[0])
		return content, content != ""
	}

	if strings.Contains(raw, fence) {
		parts := strings.SplitN(raw, fence, 3)
		block := strings.TrimSpace(parts[1])
		if HasStatementPrefix(block) {
			return block, true
		}
		// Not a statement; fall through to scanning the whole text.
	}

	var captured []string
	capturing := false
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !capturing {
			if HasStatementPrefix(line) {
				capturing = true
				captured = append(captured, line)
			}
			continue
		}
		if line == "" || hasExplanationMarker(line) {
			break
		}
		captured = append(captured, line)
	}

	if len(captured) == 0 {
		return "", false
	}
	return strings.Join(captured, "\n"), true
}

// HasStatementPrefix reports whether s begins with a recognized SQL
// statement keyword, case-insensitively.
func HasStatementPrefix(s string) bool {
	upper := strings.ToUpper(s)
	for _, kw := range statementKeywords {
		if strings.HasPrefix(upper, kw) {
			return true
		}
	}
	return false
}

func hasExplanationMarker(line string) bool {
	for _, marker := range explanationMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}
