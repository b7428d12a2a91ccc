package errorx

import "strings"

// Group collects errors of independent steps, e.g. one per input line.
type Group struct {
	errs []error
}

func NewGroup(errs ...error) *Group {
	g := &Group{}
	g.Append(errs...)
	return g
}

func (g *Group) Append(errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		g.errs = append(g.errs, err)
	}
}

// Err joins all collected errors with " | ", or returns nil if there are none.
// errors.Is matches against each collected error.
func (g *Group) Err() error {
	if len(g.errs) == 0 {
		return nil
	}
	return &groupError{errs: append([]error(nil), g.errs...)}
}

func (g *Group) Len() int {
	return len(g.errs)
}

type groupError struct {
	errs []error
}

func (e *groupError) Error() string {
	sl := make([]string, len(e.errs))
	for i, err := range e.errs {
		sl[i] = err.Error()
	}
	return strings.Join(sl, " | ")
}

func (e *groupError) Unwrap() []error {
	return e.errs
}
