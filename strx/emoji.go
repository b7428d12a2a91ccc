package strx

import (
	"regexp"
	"strings"
	"unicode"
)

var emojiSpecials = map[rune]string{
	'0': ":zero:",
	'1': ":one:",
	'2': ":two:",
	'3': ":three:",
	'4': ":four:",
	'5': ":five:",
	'6': ":six:",
	'7': ":seven:",
	'8': ":eight:",
	'9': ":nine:",
	'!': ":exclamation:",
	'?': ":question:",
}

func isWordChar(r rune) bool {
	return r == '_' || (r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)))
}

// Emojify replaces letters by regional indicators and digits, "!" and "?" by their emoji names.
// Other characters are kept.
func Emojify(s string) (string, error) {
	if s == "" {
		return "", ErrEmptyInput
	}
	var sb strings.Builder
	for _, r := range s {
		if e, ok := emojiSpecials[r]; ok {
			sb.WriteString(e)
			continue
		}
		if !isWordChar(r) {
			sb.WriteRune(r)
			continue
		}
		sb.WriteString(":regional_indicator_")
		sb.WriteRune(unicode.ToLower(r))
		sb.WriteString(":")
	}
	return sb.String(), nil
}

var customEmoji = regexp.MustCompile(`(?i)<a?:\w{2,32}:\d{17,19}>`)

// CountCustomEmoji counts chat custom emoji of the form <:name:id> or <a:name:id>.
func CountCustomEmoji(s string) int {
	return len(customEmoji.FindAllStringIndex(s, -1))
}

func HasCustomEmoji(s string) bool {
	return customEmoji.MatchString(s)
}
