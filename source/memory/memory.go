// Package memory provides an in-memory paging.Source backed by a slice.
package memory

import (
	"context"
	"sync/atomic"
)

// Source serves a fixed slice. It is safe for concurrent use.
type Source[T any] struct {
	items   []T
	count   int64
	counts  atomic.Int64
	fetches atomic.Int64
	err     error
}

// Option configures a Source.
type Option func(*config)

type config struct {
	count *int64
	err   error
}

// WithCount makes Count report n regardless of the slice length, to model a
// source whose count disagrees with its data.
func WithCount(n int64) Option {
	return func(c *config) {
		c.count = &n
	}
}

// WithError makes every call fail with err.
func WithError(err error) Option {
	return func(c *config) {
		c.err = err
	}
}

// New returns a Source over items. The slice is not copied.
func New[T any](items []T, opts ...Option) *Source[T] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	s := &Source[T]{items: items, count: int64(len(items)), err: c.err}
	if c.count != nil {
		s.count = *c.count
	}
	return s
}

// Count returns the number of items.
func (s *Source[T]) Count(ctx context.Context) (int64, error) {
	s.counts.Add(1)
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.err != nil {
		return 0, s.err
	}
	return s.count, nil
}

// FetchSlice returns up to limit items starting at offset.
func (s *Source[T]) FetchSlice(ctx context.Context, offset, limit int64) ([]T, error) {
	s.fetches.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	n := int64(len(s.items))
	if offset >= n || limit <= 0 {
		return []T{}, nil
	}
	end := offset + limit
	if end > n {
		end = n
	}
	out := make([]T, end-offset)
	copy(out, s.items[offset:end])
	return out, nil
}

// Counts returns how many times Count was called.
func (s *Source[T]) Counts() int64 {
	return s.counts.Load()
}

// Fetches returns how many times FetchSlice was called.
func (s *Source[T]) Fetches() int64 {
	return s.fetches.Load()
}

// Seq returns the integers 0..n-1, handy for fixtures.
func Seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
