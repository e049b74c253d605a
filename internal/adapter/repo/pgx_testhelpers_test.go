package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeSQL routes QueryRow/Query through configurable functions and records the
// statement and arguments it saw.
type fakeSQL struct {
	queryRow func(query string, args ...any) pgx.Row
	query    func(query string, args ...any) (pgx.Rows, error)

	lastQuery string
	lastArgs  []any
}

func (f *fakeSQL) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	f.lastQuery, f.lastArgs = query, args
	return pgconn.CommandTag{}, nil
}

func (f *fakeSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	f.lastQuery, f.lastArgs = query, args
	if f.queryRow == nil {
		return simpleRow{}
	}
	return f.queryRow(query, args...)
}

func (f *fakeSQL) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	f.lastQuery, f.lastArgs = query, args
	if f.query == nil {
		return nil, fmt.Errorf("unexpected query: %s", query)
	}
	return f.query(query, args...)
}

// simpleRow implements pgx.Row around a scan function.
type simpleRow struct {
	scan func(dest ...any) error
}

func (r simpleRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

// rowsBase supplies the pgx.Rows methods test iterators never exercise.
type rowsBase struct{}

func (rowsBase) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (rowsBase) Conn() *pgx.Conn { return nil }

func (rowsBase) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (rowsBase) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

func (rowsBase) RawValues() [][]byte { return nil }

func (rowsBase) Close() {}

func (rowsBase) Err() error { return nil }
