package nlp

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// Normalize lowers the case and collapses whitespace runs so keyword
// matching works on a predictable form of the input text.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ContainsAny reports whether any keyword occurs as a substring of the
// normalized text. Keywords are expected to be lower-case already.
func ContainsAny(normalized string, keywords ...string) bool {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}
