// Package sqlitex wraps a sqlite file with one writer connection and a pool of read-only readers.
package sqlitex

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

func NewDB(file string) (*DB, error) {
	writer, err := setupWriter(file)
	if err != nil {
		return nil, fmt.Errorf("setup-writer: %w", err)
	}
	reader, err := setupReader(file)
	if err != nil {
		writer.Close()
		return nil, fmt.Errorf("setup-reader: %w", err)
	}
	return &DB{
		writer: writer,
		reader: reader,
	}, nil
}

type DB struct {
	writer *sql.DB
	reader *sql.DB
}

func setupWriter(file string) (*sql.DB, error) {
	params := strings.Join([]string{
		"_journal_mode=WAL",
		"_synchronous=NORMAL",
		"_busy_timeout=5000",
		"_txlock=immediate",
	}, "&")
	dsn := fmt.Sprintf("file:%s?%s", file, params)
	sdb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", file, err)
	}
	sdb.SetMaxOpenConns(1)
	return sdb, nil
}

func setupReader(file string) (*sql.DB, error) {
	params := strings.Join([]string{
		"_busy_timeout=5000",
		"mode=ro",
	}, "&")
	dsn := fmt.Sprintf("file:%s?%s", file, params)
	sdb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", file, err)
	}
	sdb.SetMaxOpenConns(16)
	return sdb, nil
}

func (db *DB) Close() {
	db.reader.Close()
	db.writer.Close()
}

// Migrate runs the statements whose index is at or above the schema version stored in
// PRAGMA user_version, and bumps the version after each one.
func (db *DB) Migrate(ctx context.Context, steps ...string) error {
	var version int
	if err := db.writer.QueryRowContext(ctx, "PRAGMA user_version;").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	for i := version; i < len(steps); i++ {
		err := db.Transact(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, steps[i]); err != nil {
				return fmt.Errorf("exec step %d: %w", i, err)
			}
			if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d;", i+1)); err != nil {
				return fmt.Errorf("set user_version %d: %w", i+1, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Transact runs fn in a transaction on the writer. An error from fn rolls back.
func (db *DB) Transact(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.writer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin-tx: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit-tx: %w", err)
	}
	return nil
}

func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.writer.ExecContext(ctx, query, args...)
}

func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.reader.QueryContext(ctx, query, args...)
}

func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.reader.QueryRowContext(ctx, query, args...)
}
