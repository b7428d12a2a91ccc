// Package errorx has error helpers for the command line entry points.
package errorx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

var exit = os.Exit

// ExitWhen prints err with the caller position to stderr and exits with status 1. A nil err is a no-op.
func ExitWhen(err error) {
	if err == nil {
		return
	}
	Fprint(os.Stderr, err, 2)
	exit(1)
}

// Fprint writes err prefixed with the file:line of the caller skip frames up.
func Fprint(w io.Writer, err error, skip int) {
	_, file, line, _ := runtime.Caller(skip)
	fmt.Fprintf(w, "ERROR (EXIT): %v - (%s:%d)\n", err, filepath.Base(file), line)
}
