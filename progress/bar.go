// Package progress renders fixed-width text progress bars.
package progress

import (
	"fmt"
	"strings"

	"github.com/mazzegi/strbox/mathx"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrRange = fmt.Errorf("out-of-range")

const (
	DefaultElapsedChar  = "="
	DefaultProgressChar = ">"
	DefaultEmptyChar    = "-"
	DefaultLength       = 50
)

type Options struct {
	ElapsedChar  string `toml:"elapsed" yaml:"elapsed"`
	ProgressChar string `toml:"progress" yaml:"progress"`
	EmptyChar    string `toml:"empty" yaml:"empty"`
	Length       int    `toml:"length" yaml:"length"`
}

func DefaultOptions() Options {
	return Options{
		ElapsedChar:  DefaultElapsedChar,
		ProgressChar: DefaultProgressChar,
		EmptyChar:    DefaultEmptyChar,
		Length:       DefaultLength,
	}
}

// WithDefaults fills unset fields with the defaults.
func (o Options) WithDefaults() Options {
	if o.ElapsedChar == "" {
		o.ElapsedChar = DefaultElapsedChar
	}
	if o.ProgressChar == "" {
		o.ProgressChar = DefaultProgressChar
	}
	if o.EmptyChar == "" {
		o.EmptyChar = DefaultEmptyChar
	}
	if o.Length == 0 {
		o.Length = DefaultLength
	}
	return o
}

// Bar renders elapsed out of total as a bar of opts.Length characters:
// elapsed part, one progress marker, empty rest. A complete bar has no room left for the marker.
func Bar(elapsed, total int, opts Options) (string, error) {
	switch {
	case total <= 0:
		return "", fmt.Errorf("total %d must be positive: %w", total, ErrRange)
	case elapsed < 0:
		return "", fmt.Errorf("elapsed %d must not be negative: %w", elapsed, ErrRange)
	case elapsed > total:
		return "", fmt.Errorf("elapsed %d exceeds total %d: %w", elapsed, total, ErrRange)
	}
	opts = opts.WithDefaults()
	if opts.Length < 0 {
		return "", fmt.Errorf("length %d: %w", opts.Length, ErrRange)
	}

	available := elapsed * opts.Length / total
	rest := opts.Length - available
	if elapsed != total {
		rest--
	}

	bar := []rune(strings.Repeat(opts.ElapsedChar, available) +
		opts.ProgressChar +
		strings.Repeat(opts.EmptyChar, mathx.NonNeg(rest)))
	if len(bar) > opts.Length {
		bar = bar[:opts.Length]
	}
	return string(bar), nil
}

// Percent is elapsed relative to total in percent, rounded to two places and clamped to [0, 100].
func Percent(elapsed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return mathx.Clamp(mathx.RoundPlaces(float64(elapsed)*100/float64(total), 2), 0, 100)
}

// Label formats "elapsed / total (percent%)" with the number formatting of tag.
func Label(elapsed, total int, tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%d / %d (%.2f%%)", elapsed, total, Percent(elapsed, total))
}
