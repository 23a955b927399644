package paging

import "context"

// Counter reports the number of elements in an ordered data set.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// Source is an ordered, countable data set that can be read in slices.
//
// FetchSlice must return items in the same order for repeated calls with
// the same offset and limit; pagination over a source that reorders is not
// well defined. Paginate does not check this.
type Source[T any] interface {
	Counter
	FetchSlice(ctx context.Context, offset, limit int64) ([]T, error)
}

// SourceFuncs adapts a pair of functions into a Source.
type SourceFuncs[T any] struct {
	CountFunc func(ctx context.Context) (int64, error)
	FetchFunc func(ctx context.Context, offset, limit int64) ([]T, error)
}

// Count calls CountFunc.
func (f SourceFuncs[T]) Count(ctx context.Context) (int64, error) {
	return f.CountFunc(ctx)
}

// FetchSlice calls FetchFunc.
func (f SourceFuncs[T]) FetchSlice(ctx context.Context, offset, limit int64) ([]T, error) {
	return f.FetchFunc(ctx, offset, limit)
}
