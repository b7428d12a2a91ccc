// Package env provides a uniform way of dealing with environment such as .env files, os.Environ and command tokens.
// The goal is, that applications don't have to care about the source from a variable but just handle the values.
package env

import (
	"fmt"
	"os"
	"strings"

	"github.com/mazzegi/strbox/argx"
	"github.com/mazzegi/strbox/convert"
	"github.com/mazzegi/strbox/maps"
)

func unquote(s string) string {
	if (strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)) ||
		(strings.HasPrefix(s, `'`) && strings.HasSuffix(s, `'`)) {
		return s[1 : len(s)-1]
	}
	return s
}

type Var struct {
	Key   string
	Value any
}

func MkVar(k string, v any) Var {
	return Var{Key: k, Value: v}
}

type Env map[string]any

func (env Env) add(k string, v any) {
	k = strings.TrimSpace(k)
	if k == "" {
		return
	}
	env[k] = v
}

// FromArgs reads options and boolean flags out of command tokens.
// Options keep their string value, boolean flags become true.
func FromArgs(args []string) Env {
	env := Env{}
	res := argx.Parse(args)
	for _, f := range res.Flags {
		env.add(f, true)
	}
	for k, v := range res.Options {
		env.add(k, v)
	}
	return env
}

// Load collects variables, later sources overriding earlier ones:
// os.Environ, dotenv files (see LoadDotenv), options in args, and vars.
func Load(args []string, vars ...Var) Env {
	env := Env{}
	for _, osev := range os.Environ() {
		k, v, _ := strings.Cut(osev, "=")
		v = unquote(strings.TrimSpace(v))
		if v == "" {
			env.add(k, true)
		} else {
			env.add(k, v)
		}
	}
	for k, v := range LoadDotenv() {
		env.add(k, v)
	}
	for k, v := range FromArgs(args) {
		env.add(k, v)
	}
	for _, v := range vars {
		env.add(v.Key, v.Value)
	}

	// expand all values to allow for "inline" string vars
	repl := env.Expander()
	for k, v := range env {
		if s, ok := v.(string); ok {
			env[k] = repl.Replace(s)
		}
	}
	return env
}

func (env Env) Expander() *strings.Replacer {
	var oldnew []string
	for _, k := range maps.OrderedKeys(env) {
		s, ok := env.String(k)
		if !ok {
			continue
		}
		oldnew = append(oldnew, fmt.Sprintf("{%s}", k), s)
	}
	return strings.NewReplacer(oldnew...)
}

// Var returns the value for the passed key if exists, otherwise, false
func (env Env) Var(key string) (any, bool) {
	v, ok := env[key]
	return v, ok
}

// String returns the string-value for the passed key if exists, otherwise, false
func (env Env) String(key string) (string, bool) {
	v, ok := env[key]
	if !ok {
		return "", false
	}
	return convert.ToString(v), true
}

// Int returns the int-value for the passed key if exists, otherwise, false
func (env Env) Int(key string) (int, bool) {
	v, ok := env[key]
	if !ok {
		return 0, false
	}
	return convert.ToInt(v)
}

// Bool is true if key exists and reads as true
func (env Env) Bool(key string) bool {
	v, ok := env[key]
	return ok && convert.ToBool(v)
}

func (env Env) StringOrDefault(key string, def string) string {
	if v, ok := env.String(key); ok {
		return v
	}
	return def
}

func (env Env) IntOrDefault(key string, def int) int {
	if v, ok := env.Int(key); ok {
		return v
	}
	return def
}
