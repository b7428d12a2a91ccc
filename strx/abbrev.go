package strx

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Abbreviate joins the first characters of the space separated words of s.
// A string without spaces is returned as is.
func Abbreviate(s string) (string, error) {
	if s == "" {
		return "", ErrEmptyInput
	}
	if !strings.Contains(s, " ") {
		return s, nil
	}
	var sb strings.Builder
	for _, w := range strings.Split(strings.TrimSpace(s), " ") {
		if r, n := utf8.DecodeRuneInString(w); n > 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String(), nil
}

const DefaultPlaceholder = "..."

// Shorten cuts s after length characters and appends placeholder (DefaultPlaceholder if empty).
// Strings that fit are returned unchanged.
func Shorten(s string, length int, placeholder string) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("length %d: %w", length, ErrInvalidSize)
	}
	rs := []rune(s)
	if len(rs) <= length {
		return s, nil
	}
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return string(rs[:length]) + placeholder, nil
}
