package strx

import (
	"fmt"
	"math/rand/v2"

	"github.com/mazzegi/strbox/slicesx"
)

// Chunks splits s into pieces of size characters; the last one may be shorter.
func Chunks(s string, size int) ([]string, error) {
	if s == "" {
		return nil, ErrEmptyInput
	}
	if size <= 0 {
		return nil, fmt.Errorf("chunk size %d: %w", size, ErrInvalidSize)
	}
	return slicesx.Map(slicesx.Chunks([]rune(s), size), func(c []rune) string {
		return string(c)
	}), nil
}

// Scramble shuffles the characters of s. A nil r uses the global source.
func Scramble(s string, r *rand.Rand) (string, error) {
	if s == "" {
		return "", ErrEmptyInput
	}
	rs := []rune(s)
	slicesx.Shuffle(rs, func(n int) int { return intn(r, n) })
	return string(rs), nil
}
