package strx

import (
	"testing"

	"github.com/mazzegi/strbox/testx"
)

func TestEmojify(t *testing.T) {
	tests := map[string]string{
		"Hi!":   ":regional_indicator_h::regional_indicator_i::exclamation:",
		"a 1?":  ":regional_indicator_a: :one::question:",
		"_":     ":regional_indicator__:",
		"é-9":   "é-:nine:",
		"2024":  ":two::zero::two::four:",
		"ok, #": ":regional_indicator_o::regional_indicator_k:, #",
	}
	for in, exp := range tests {
		res, err := Emojify(in)
		testx.AssertNoErr(t, err)
		if res != exp {
			t.Fatalf("emojify %q: want %q, have %q", in, exp, res)
		}
	}
}

func TestCustomEmoji(t *testing.T) {
	tests := map[string]int{
		"no emoji here":              0,
		"<:pepe:123456789012345678>": 1,
		"<:x:123456789012345678>":    0,
		"<:toolong:1234>":            0,
		"":                           0,
		"<a:dance:12345678901234567> and <:ok:1234567890123456789>": 2,
	}
	for in, exp := range tests {
		if have := CountCustomEmoji(in); have != exp {
			t.Fatalf("count %q: want %d, have %d", in, exp, have)
		}
		if has := HasCustomEmoji(in); has != (exp > 0) {
			t.Fatalf("has %q: want %t, have %t", in, exp > 0, has)
		}
	}
}
