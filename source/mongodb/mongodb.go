// Package mongodb provides a paging.Source over a MongoDB collection.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultSort orders documents by _id, which is unique and immutable.
var DefaultSort = bson.D{{Key: "_id", Value: 1}}

// Option configures a Source.
type Option func(*config)

type config struct {
	sort       bson.D
	projection any
}

// WithSort sets the sort document. It should end on a unique field so the
// order is total.
func WithSort(sort bson.D) Option {
	return func(o *config) {
		if len(sort) > 0 {
			o.sort = sort
		}
	}
}

// WithProjection limits the returned fields.
func WithProjection(projection any) Option {
	return func(o *config) {
		o.projection = projection
	}
}

// Source pages through the documents matching a filter. Documents are
// decoded into T.
type Source[T any] struct {
	coll   *mongo.Collection
	filter any
	opts   config
}

// New returns a Source over coll. A nil filter matches every document.
func New[T any](coll *mongo.Collection, filter any, opts ...Option) *Source[T] {
	if filter == nil {
		filter = bson.D{}
	}
	o := config{sort: DefaultSort}
	for _, opt := range opts {
		opt(&o)
	}
	return &Source[T]{coll: coll, filter: filter, opts: o}
}

// Count returns the number of matching documents.
func (s *Source[T]) Count(ctx context.Context) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, s.filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", s.coll.Name(), err)
	}
	return n, nil
}

// FindOptions returns the find options used for a slice.
func (s *Source[T]) FindOptions(offset, limit int64) *options.FindOptions {
	opts := options.Find().
		SetSort(s.opts.sort).
		SetSkip(offset).
		SetLimit(limit)
	if s.opts.projection != nil {
		opts.SetProjection(s.opts.projection)
	}
	return opts
}

// FetchSlice returns up to limit documents starting at offset.
func (s *Source[T]) FetchSlice(ctx context.Context, offset, limit int64) ([]T, error) {
	cursor, err := s.coll.Find(ctx, s.filter, s.FindOptions(offset, limit))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", s.coll.Name(), err)
	}

	items := make([]T, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.coll.Name(), err)
	}
	return items, nil
}
