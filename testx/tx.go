// Package testx holds the small assertion helpers used across the strbox tests.
package testx

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func NewTx(t *testing.T) *Tx {
	return &Tx{t: t}
}

// Tx binds the assertions to one *testing.T.
type Tx struct {
	t *testing.T
}

func (tx *Tx) T() *testing.T {
	return tx.t
}

func (tx *Tx) AssertEqual(want, have any) {
	tx.t.Helper()
	AssertEqual(tx.t, want, have)
}

func (tx *Tx) AssertTrue(cond bool) {
	tx.t.Helper()
	if cond {
		return
	}
	tx.t.Fatalf("condition is false")
}

func (tx *Tx) AssertNoErr(err error) {
	tx.t.Helper()
	AssertNoErr(tx.t, err)
}

func (tx *Tx) AssertErrIs(err error, target error) {
	tx.t.Helper()
	AssertErrIs(tx.t, err, target)
}

func (tx *Tx) AssertContains(s, sub string) {
	tx.t.Helper()
	if strings.Contains(s, sub) {
		return
	}
	tx.t.Fatalf("%q does not contain %q", s, sub)
}

func AssertEqual(t *testing.T, want, have any) {
	t.Helper()
	if reflect.DeepEqual(want, have) {
		return
	}
	t.Fatalf("want %v, have %v", want, have)
}

func AssertNoErr(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		return
	}
	t.Fatalf("error is not-nil but: %v", err)
}

func AssertErrIs(t *testing.T, err error, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expect err %v; got none", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expect err %v; got %v", target, err)
	}
}
