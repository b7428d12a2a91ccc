package history

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mazzegi/strbox/argx"
	"github.com/mazzegi/strbox/testx"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	testx.AssertNoErr(t, err)
	t.Cleanup(s.Close)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	s.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
	return s
}

func TestAddGet(t *testing.T) {
	tx := testx.NewTx(t)
	ctx := context.Background()
	s := newTestStore(t)

	rec, err := s.Add(ctx, "greet --name John Doe --loud")
	tx.AssertNoErr(err)
	tx.AssertEqual(map[string]string{"name": "John Doe"}, rec.Result.Options)
	tx.AssertEqual([]string{"loud"}, rec.Result.Flags)

	got, err := s.Get(ctx, rec.ID)
	tx.AssertNoErr(err)
	tx.AssertEqual(rec.ID, got.ID)
	tx.AssertEqual(rec.Line, got.Line)
	tx.AssertEqual(rec.Result, got.Result)
	tx.AssertTrue(rec.CreatedOn.Equal(got.CreatedOn))

	_, err = s.Get(ctx, "does-not-exist")
	tx.AssertErrIs(err, ErrNotFound)
}

func TestAddResultKeepsTokens(t *testing.T) {
	tx := testx.NewTx(t)
	ctx := context.Background()
	s := newTestStore(t)

	tokens := []string{"--msg hi"}
	rec, err := s.AddResult(ctx, strings.Join(tokens, " "), argx.Parse(tokens))
	tx.AssertNoErr(err)

	got, err := s.Get(ctx, rec.ID)
	tx.AssertNoErr(err)
	tx.AssertEqual([]string{"msg hi"}, got.Result.Flags)
	tx.AssertEqual(map[string]string{}, got.Result.Options)
	tx.AssertEqual("--msg hi", got.Line)
}

func TestList(t *testing.T) {
	tx := testx.NewTx(t)
	ctx := context.Background()
	s := newTestStore(t)

	recs, err := s.List(ctx, 0)
	tx.AssertNoErr(err)
	tx.AssertEqual(0, len(recs))

	for _, line := range []string{"one", "two --x", "three --y 3"} {
		_, err := s.Add(ctx, line)
		tx.AssertNoErr(err)
	}

	recs, err = s.List(ctx, 0)
	tx.AssertNoErr(err)
	tx.AssertEqual(3, len(recs))
	tx.AssertEqual("three --y 3", recs[0].Line)
	tx.AssertEqual("one", recs[2].Line)

	recs, err = s.List(ctx, 2)
	tx.AssertNoErr(err)
	tx.AssertEqual(2, len(recs))
	tx.AssertEqual("two --x", recs[1].Line)
}

func TestDiff(t *testing.T) {
	tx := testx.NewTx(t)
	ctx := context.Background()
	s := newTestStore(t)

	a, err := s.Add(ctx, "ban --user John --days 3")
	tx.AssertNoErr(err)
	b, err := s.Add(ctx, "ban --user Jane --days 3")
	tx.AssertNoErr(err)
	c, err := s.Add(ctx, "ban --user John --days 3")
	tx.AssertNoErr(err)

	cl, err := s.Diff(ctx, a.ID, c.ID)
	tx.AssertNoErr(err)
	tx.AssertEqual(0, len(cl))

	cl, err = s.Diff(ctx, a.ID, b.ID)
	tx.AssertNoErr(err)
	found := false
	for _, ch := range cl {
		if len(ch.Path) == 2 && ch.Path[0] == "Options" && ch.Path[1] == "user" {
			found = true
			tx.AssertEqual("update", ch.Type)
			tx.AssertEqual("John", ch.From)
			tx.AssertEqual("Jane", ch.To)
		}
	}
	tx.AssertTrue(found)

	_, err = s.Diff(ctx, a.ID, "missing")
	tx.AssertErrIs(err, ErrNotFound)
}

func TestReopen(t *testing.T) {
	tx := testx.NewTx(t)
	ctx := context.Background()
	file := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(file)
	tx.AssertNoErr(err)
	rec, err := s.Add(ctx, "keep --me")
	tx.AssertNoErr(err)
	s.Close()

	s, err = Open(file)
	tx.AssertNoErr(err)
	defer s.Close()
	got, err := s.Get(ctx, rec.ID)
	tx.AssertNoErr(err)
	tx.AssertEqual([]string{"me"}, got.Result.Flags)
}
