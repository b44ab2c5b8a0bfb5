package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID parses a positive database id from a path segment.
func ParseID(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(n), nil
}

// SplitTerms splits a "+"-joined path segment into its non-blank terms.
func SplitTerms(s string) []string {
	terms := []string{}
	for _, part := range strings.Split(s, "+") {
		if t := strings.TrimSpace(part); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// CleanTags trims tags and drops blank ones.
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// CleanComment strips markup and surrounding whitespace from comment text.
func CleanComment(s string) string {
	return strings.TrimSpace(StripHTML(s))
}
