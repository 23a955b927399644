package source

import (
	"context"

	"github.com/ncobase/sqlpage/paging"
)

// Any erases the item type of src so sources of different kinds can be
// served through one handler.
func Any[T any](src paging.Source[T]) paging.Source[any] {
	return anySource[T]{src: src}
}

type anySource[T any] struct {
	src paging.Source[T]
}

func (a anySource[T]) Count(ctx context.Context) (int64, error) {
	return a.src.Count(ctx)
}

func (a anySource[T]) FetchSlice(ctx context.Context, offset, limit int64) ([]any, error) {
	items, err := a.src.FetchSlice(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out, nil
}
