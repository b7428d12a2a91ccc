// Package fsx has small file system helpers.
package fsx

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Exists reports whether a regular file exists at file.
func Exists(file string) bool {
	fi, err := os.Stat(file)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

// Parents returns dir and all of its parents, innermost first.
func Parents(dir string) ([]string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	dirs := []string{dir}
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return dirs, nil
		}
		dirs = append(dirs, parent)
		dir = parent
	}
}

// IsNotExist is errors.Is(err, fs.ErrNotExist).
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
