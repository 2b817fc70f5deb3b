package app

import (
	"regexp"
	"strings"
)

const maxTracedQueryLength = 512

var (
	sqlLineComment  = regexp.MustCompile(`--[^\n]*`)
	sqlWhitespaceRe = regexp.MustCompile(`\s+`)
)

// formatDBQueryForTrace renders a query as one line for span attributes,
// without line comments and capped at maxTracedQueryLength bytes.
func formatDBQueryForTrace(query string) string {
	query = sqlLineComment.ReplaceAllString(query, " ")
	query = strings.TrimSpace(sqlWhitespaceRe.ReplaceAllString(query, " "))
	if len(query) <= maxTracedQueryLength {
		return query
	}
	return query[:maxTracedQueryLength] + "..."
}
