package argx

import (
	"slices"

	"github.com/mazzegi/strbox/convert"
	"github.com/mazzegi/strbox/maps"
	"github.com/mazzegi/strbox/set"
)

// Result is the outcome of Parse. A name is either in Options or in Flags, never in both.
type Result struct {
	Options                   map[string]string `json:"options"`
	Flags                     []string          `json:"flags"`
	ContentBeforeOptions      string            `json:"content_before_options"`
	ContentWithoutFlagMarkers string            `json:"content_without_flag_markers"`
}

// HasFlag reports whether name was given as a boolean flag.
func (r Result) HasFlag(name string) bool {
	return slices.Contains(r.Flags, name)
}

// Option returns the value for name if it was given with a value.
func (r Result) Option(name string) (string, bool) {
	v, ok := r.Options[name]
	return v, ok
}

// OptionOr returns the value for name or def.
func (r Result) OptionOr(name string, def string) string {
	if v, ok := r.Options[name]; ok {
		return v
	}
	return def
}

func (r Result) OptionInt(name string) (int, bool) {
	v, ok := r.Options[name]
	if !ok {
		return 0, false
	}
	return convert.ToInt(v)
}

// OptionFloat reads the value for name as a number; a decimal comma is accepted.
func (r Result) OptionFloat(name string) (float64, bool) {
	v, ok := r.Options[name]
	if !ok {
		return 0, false
	}
	return convert.ToFloat(v)
}

// OptionBool is true for a boolean flag or for an option whose value reads as true ("yes", "1", "on" ...).
func (r Result) OptionBool(name string) bool {
	if r.HasFlag(name) {
		return true
	}
	v, ok := r.Options[name]
	if !ok {
		return false
	}
	return convert.ToBool(v)
}

// Names returns all flag and option names, sorted.
func (r Result) Names() []string {
	ns := set.New(r.Flags...)
	for _, k := range maps.Keys(r.Options) {
		ns.Insert(k)
	}
	return set.Sorted(ns)
}
