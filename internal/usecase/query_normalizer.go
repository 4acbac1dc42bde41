package usecase

import (
	"regexp"
	"strings"
)

var multiSpacePattern = regexp.MustCompile(`\s+`)

// NormalizeQuery lower-cases free text and collapses runs of whitespace
func NormalizeQuery(s string) string {
	s = multiSpacePattern.ReplaceAllString(strings.ToLower(s), " ")
	return strings.TrimSpace(s)
}

// firstToken returns the first whitespace-delimited word, or "" for blank input
func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
