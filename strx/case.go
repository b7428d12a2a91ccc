package strx

import (
	"regexp"
	"strings"

	"github.com/mazzegi/strbox/slicesx"
)

var wordStart = regexp.MustCompile(`\b\w`)

// ProperCase upper-cases the first word character after every word boundary.
// With lower set, the rest of the string is lower-cased first.
func ProperCase(s string, lower bool) (string, error) {
	if s == "" {
		return "", ErrEmptyInput
	}
	if lower {
		s = strings.ToLower(s)
	}
	return wordStart.ReplaceAllStringFunc(s, strings.ToUpper), nil
}

// Mock alternates the case of s, starting lower: "hello" -> "hElLo".
func Mock(s string) (string, error) {
	if s == "" {
		return "", ErrEmptyInput
	}
	pairs := slicesx.Chunks([]rune(strings.ToLower(s)), 2)
	return strings.Join(slicesx.Map(pairs, func(p []rune) string {
		return string(p[:1]) + strings.ToUpper(string(p[1:]))
	}), ""), nil
}
