// Package history keeps parsed command lines in a sqlite file so they can be listed and compared later.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mazzegi/log"
	"github.com/mazzegi/strbox/argx"
	"github.com/mazzegi/strbox/sqlitex"
	"github.com/r3labs/diff/v3"
)

var ErrNotFound = fmt.Errorf("not-found")

var migrations = []string{
	`
CREATE TABLE IF NOT EXISTS records (
	id 			TEXT PRIMARY KEY,
	line 		TEXT NOT NULL,
	result 		TEXT NOT NULL,
	created_on 	TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS records_created_on ON records (created_on);
`,
}

// Record is one parsed command line.
type Record struct {
	ID        string      `json:"id"`
	Line      string      `json:"line"`
	Result    argx.Result `json:"result"`
	CreatedOn time.Time   `json:"created_on"`
}

type Store struct {
	db  *sqlitex.DB
	now func() time.Time
}

func Open(file string) (*Store, error) {
	db, err := sqlitex.NewDB(file)
	if err != nil {
		return nil, fmt.Errorf("sqlitex.newdb at %q: %w", file, err)
	}
	if err := db.Migrate(context.Background(), migrations...); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Debugf("history: opened %q", file)
	return &Store{
		db:  db,
		now: time.Now,
	}, nil
}

func (s *Store) Close() {
	s.db.Close()
}

func formatTime(t time.Time) string {
	return t.UTC().Round(time.Microsecond).Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.ParseInLocation(time.RFC3339Nano, s, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Add parses line and stores the result.
func (s *Store) Add(ctx context.Context, line string) (Record, error) {
	return s.AddResult(ctx, line, argx.ParseLine(line))
}

// AddResult stores res as the result for line. Use it when the tokens behind res were not
// produced by splitting line on whitespace.
func (s *Store) AddResult(ctx context.Context, line string, res argx.Result) (Record, error) {
	rec := Record{
		ID:        uuid.NewString(),
		Line:      line,
		Result:    res,
		CreatedOn: s.now().UTC().Round(time.Microsecond),
	}
	bs, err := json.Marshal(rec.Result)
	if err != nil {
		return Record{}, fmt.Errorf("json.marshal result: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (id, line, result, created_on) VALUES (?, ?, ?, ?);`,
		rec.ID, rec.Line, string(bs), formatTime(rec.CreatedOn),
	)
	if err != nil {
		return Record{}, fmt.Errorf("insert record: %w", err)
	}
	log.Debugf("history: added %s (%d flags, %d options)", rec.ID, len(rec.Result.Flags), len(rec.Result.Options))
	return rec, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var rec Record
	var result, createdOn string
	if err := sc.Scan(&rec.ID, &rec.Line, &result, &createdOn); err != nil {
		return Record{}, err
	}
	if err := json.Unmarshal([]byte(result), &rec.Result); err != nil {
		return Record{}, fmt.Errorf("json.unmarshal result of %s: %w", rec.ID, err)
	}
	rec.CreatedOn = parseTime(createdOn)
	return rec, nil
}

func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, line, result, created_on FROM records WHERE id = ?;`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("record %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("scan record %q: %w", id, err)
	}
	return rec, nil
}

// List returns up to limit records, newest first. limit <= 0 means all.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, line, result, created_on FROM records ORDER BY created_on DESC, id ASC LIMIT ?;`, limit)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	recs := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return recs, nil
}

// Diff lists the changes from the result of record a to the result of record b.
func (s *Store) Diff(ctx context.Context, a, b string) (diff.Changelog, error) {
	ra, err := s.Get(ctx, a)
	if err != nil {
		return nil, err
	}
	rb, err := s.Get(ctx, b)
	if err != nil {
		return nil, err
	}
	cl, err := diff.Diff(ra.Result, rb.Result)
	if err != nil {
		return nil, fmt.Errorf("diff: %w", err)
	}
	return cl, nil
}
