package strx

import (
	"encoding/base64"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/mazzegi/strbox/testx"
)

func TestFakeToken(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 200; i++ {
		tok := FakeToken(r)
		if len(tok) != 58 && len(tok) != FakeTokenLength {
			t.Fatalf("token %q has length %d", tok, len(tok))
		}
		id, tail, ok := strings.Cut(tok, ".")
		if !ok {
			t.Fatalf("token %q has no dot", tok)
		}
		raw, err := base64.StdEncoding.DecodeString(id)
		testx.AssertNoErr(t, err)
		if len(raw) < 17 || len(raw) > 19 {
			t.Fatalf("id %q decodes to %d digits", id, len(raw))
		}
		for _, c := range raw {
			if c < '0' || c > '9' {
				t.Fatalf("id %q contains non digit %q", id, c)
			}
		}
		if tail[tokenTailDot] != '.' {
			t.Fatalf("tail %q misses dot at %d", tail, tokenTailDot)
		}
	}
}

func TestFakeTokenSeeded(t *testing.T) {
	a := FakeToken(rand.New(rand.NewPCG(1, 1)))
	b := FakeToken(rand.New(rand.NewPCG(1, 1)))
	testx.AssertEqual(t, a, b)
}
