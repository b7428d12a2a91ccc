// Package argx separates a sequence of command tokens into free content, boolean flags and
// key/value options.
//
// The grammar is deliberately simple: every token containing "--" is a flag token, its name is
// the token without its first two characters, and its value is everything up to the next flag
// token. An empty value makes it a boolean flag.
package argx

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Marker identifies a flag token wherever it occurs in the token.
const Marker = "--"

var ErrInvalidInputType = fmt.Errorf("invalid-input-type")

// IsFlagToken reports whether token contains the flag marker anywhere.
func IsFlagToken(token string) bool {
	return strings.Contains(token, Marker)
}

// FlagName strips the first two characters of token, regardless of where the marker is.
// The remaining bytes are kept as they are, invalid UTF-8 included.
func FlagName(token string) string {
	n := 0
	for i := 0; i < len(Marker) && n < len(token); i++ {
		_, w := utf8.DecodeRuneInString(token[n:])
		n += w
	}
	return token[n:]
}

// ParseLine splits line on whitespace and parses the resulting tokens.
func ParseLine(line string) Result {
	return Parse(strings.Fields(line))
}

// ParseAny parses v if it is a []string or a []any made of strings only.
func ParseAny(v any) (Result, error) {
	switch v := v.(type) {
	case []string:
		return Parse(v), nil
	case []any:
		tokens := make([]string, len(v))
		for i, e := range v {
			s, ok := e.(string)
			if !ok {
				return Result{}, fmt.Errorf("element %d is %T: %w", i, e, ErrInvalidInputType)
			}
			tokens[i] = s
		}
		return Parse(tokens), nil
	default:
		return Result{}, fmt.Errorf("input is %T: %w", v, ErrInvalidInputType)
	}
}

// Parse classifies tokens. tokens is never modified.
func Parse(tokens []string) Result {
	joined := strings.Join(tokens, " ")

	var matches []int
	for i, token := range tokens {
		if IsFlagToken(token) {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		return Result{
			Options:                   map[string]string{},
			Flags:                     []string{},
			ContentBeforeOptions:      joined,
			ContentWithoutFlagMarkers: joined,
		}
	}

	// names in order of first appearance, values last-write-wins
	var names []string
	values := map[string]string{}
	for _, idx := range matches {
		name := FlagName(tokens[idx])
		if _, ok := values[name]; !ok {
			names = append(names, name)
		}
		values[name] = trailingValue(tokens, idx)
	}

	res := Result{
		Options: map[string]string{},
		Flags:   []string{},
	}
	for _, name := range names {
		if v := values[name]; v != "" {
			res.Options[name] = v
		} else {
			res.Flags = append(res.Flags, name)
		}
	}
	res.ContentBeforeOptions = strings.Join(tokens[:matches[0]], " ")

	markers := make([]string, len(matches))
	for i, idx := range matches {
		markers[i] = tokens[idx]
	}
	res.ContentWithoutFlagMarkers = stripMarkers(joined, markers)
	return res
}

// trailingValue collects the tokens after tokens[idx] up to the next flag token.
func trailingValue(tokens []string, idx int) string {
	var acc []string
	for _, token := range tokens[idx+1:] {
		if IsFlagToken(token) {
			break
		}
		acc = append(acc, token)
	}
	return strings.Join(acc, " ")
}

// stripMarkers removes every literal occurrence of every marker token and collapses spaces.
// Removing one marker may join text into another marker, so it repeats until none is left.
func stripMarkers(s string, markers []string) string {
	for {
		changed := false
		for _, m := range markers {
			if strings.Contains(s, m) {
				s = strings.ReplaceAll(s, m, "")
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return collapseSpaces(s)
}

func collapseSpaces(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		sb.WriteRune(r)
	}
	return strings.Trim(sb.String(), " ")
}
