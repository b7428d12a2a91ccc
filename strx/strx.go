// Package strx holds small text transformations for chat and command output:
// casing, chunking, scrambling, emoji substitution, abbreviation and fake tokens.
package strx

import (
	"fmt"
	"math/rand/v2"
)

var (
	ErrEmptyInput  = fmt.Errorf("empty-input")
	ErrInvalidSize = fmt.Errorf("invalid-size")
)

// intn draws from r, or from the global source if r is nil.
func intn(r *rand.Rand, n int) int {
	if r == nil {
		return rand.IntN(n)
	}
	return r.IntN(n)
}
