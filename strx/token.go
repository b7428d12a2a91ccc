package strx

import (
	"encoding/base64"
	"math/rand/v2"
	"strings"
)

const (
	FakeTokenLength = 59
	tokenChars      = "abcdefghijklmnopqrstuvwxyz1234567890"
	tokenTailLength = 33
	tokenTailDot    = 5
)

var tokenIDLengths = []int{17, 18, 19}

// FakeToken generates a string shaped like a chat bot token: a base64 encoded numeric id,
// a dot and a random tail with one more dot. It is not a secret and not unique.
func FakeToken(r *rand.Rand) string {
	idLen := tokenIDLengths[intn(r, len(tokenIDLengths))]
	id := make([]byte, idLen)
	for i := range id {
		id[i] = byte('0' + intn(r, 10))
	}

	var sb strings.Builder
	sb.WriteString(base64.StdEncoding.EncodeToString(id))
	sb.WriteByte('.')
	for i := 0; i < tokenTailLength; i++ {
		if i == tokenTailDot {
			sb.WriteByte('.')
			continue
		}
		c := tokenChars[intn(r, len(tokenChars))]
		if intn(r, 2) == 1 {
			c = strings.ToUpper(string(c))[0]
		}
		sb.WriteByte(c)
	}
	tok := sb.String()
	if len(tok) > FakeTokenLength {
		tok = tok[:FakeTokenLength]
	}
	return tok
}
