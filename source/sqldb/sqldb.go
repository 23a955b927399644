// Package sqldb provides a paging.Source over a SQL table.
//
// Statements are built with the entgo.io/ent/dialect/sql builder, so the
// same source works against SQLite, PostgreSQL and MySQL:
//
//	src := sqldb.New(db, dialect.Postgres, "events",
//	    sqldb.WithColumns("id", "kind", "created_at"),
//	    sqldb.WithOrderBy("created_at", "id"),
//	    sqldb.WithWhere(entsql.EQ("kind", "login")),
//	)
//	page, err := paging.Paginate[sqldb.Row](ctx, src, 50, token)
//
// Offsets are only meaningful under a stable order, so the order defaults
// to the primary key column id.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

// DefaultOrderBy is the order used when none is configured.
const DefaultOrderBy = "id"

// maxPrealloc bounds the capacity reserved ahead of scanning.
const maxPrealloc = 1024

// Row is a table row keyed by column name.
type Row map[string]any

// ScanFunc converts the current row of rows into an item.
type ScanFunc[T any] func(rows *sql.Rows) (T, error)

// Option configures a Source.
type Option func(*options)

type options struct {
	columns []string
	orderBy []string
	where   *entsql.Predicate
}

// WithColumns selects the given columns. All columns are selected by default.
func WithColumns(columns ...string) Option {
	return func(o *options) {
		o.columns = columns
	}
}

// WithOrderBy sets the ORDER BY terms. Use entsql.Desc for descending order.
func WithOrderBy(terms ...string) Option {
	return func(o *options) {
		if len(terms) > 0 {
			o.orderBy = terms
		}
	}
}

// WithWhere restricts the rows to those matching p.
func WithWhere(p *entsql.Predicate) Option {
	return func(o *options) {
		o.where = p
	}
}

// Source pages through a table. It is safe for concurrent use.
type Source[T any] struct {
	db      *sql.DB
	dialect string
	table   string
	scan    ScanFunc[T]
	opts    options
}

// New returns a Source whose items are rows keyed by column name.
func New(db *sql.DB, dialect, table string, opts ...Option) *Source[Row] {
	return NewScanned(db, dialect, table, ScanRow, opts...)
}

// NewScanned returns a Source whose rows are converted by scan.
func NewScanned[T any](db *sql.DB, dialect, table string, scan ScanFunc[T], opts ...Option) *Source[T] {
	o := options{orderBy: []string{DefaultOrderBy}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Source[T]{db: db, dialect: dialect, table: table, scan: scan, opts: o}
}

// CountQuery returns the statement used by Count.
func (s *Source[T]) CountQuery() (string, []any) {
	b := entsql.Dialect(s.dialect)
	sel := b.Select(entsql.Count("*")).From(entsql.Table(s.table))
	if s.opts.where != nil {
		sel.Where(s.opts.where)
	}
	return sel.Query()
}

// SliceQuery returns the statement used by FetchSlice.
func (s *Source[T]) SliceQuery(offset, limit int64) (string, []any) {
	b := entsql.Dialect(s.dialect)
	// An empty selection renders as SELECT *.
	sel := b.Select(s.opts.columns...).From(entsql.Table(s.table))
	if s.opts.where != nil {
		sel.Where(s.opts.where)
	}
	sel.OrderBy(s.opts.orderBy...).Limit(int(limit)).Offset(int(offset))
	return sel.Query()
}

// Count returns the number of matching rows.
func (s *Source[T]) Count(ctx context.Context) (int64, error) {
	query, args := s.CountQuery()
	var n int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", s.table, err)
	}
	return n, nil
}

// FetchSlice returns up to limit rows starting at offset.
func (s *Source[T]) FetchSlice(ctx context.Context, offset, limit int64) ([]T, error) {
	query, args := s.SliceQuery(offset, limit)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", s.table, err)
	}
	defer rows.Close()

	items := make([]T, 0, min(limit, maxPrealloc))
	for rows.Next() {
		item, err := s.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.table, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select %s: %w", s.table, err)
	}
	return items, nil
}

// ScanRow scans the current row into a Row. Byte slices are returned as
// strings so rows encode naturally as JSON.
func ScanRow(rows *sql.Rows) (Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	row := make(Row, len(columns))
	for i, col := range columns {
		if b, ok := values[i].([]byte); ok {
			row[col] = string(b)
			continue
		}
		row[col] = values[i]
	}
	return row, nil
}
