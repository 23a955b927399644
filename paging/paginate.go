package paging

import (
	"context"
	"fmt"
)

// DefaultPageSize is used when a caller does not ask for a page size.
const DefaultPageSize = 10

// Page is one step of a traversal.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextToken  string `json:"next_page_token,omitempty"`
	TotalItems int64  `json:"total_items"`
	HasNext    bool   `json:"has_next"`
	// State is the progress this page was fetched with.
	State State `json:"-"`
}

// Paginate returns the page that follows token, or the first page when
// token is empty. The returned NextToken is empty once every counted
// element has been returned.
//
// A pageSize different from the one carried by token replaces it for this
// and later steps; the offset is not recomputed.
func Paginate[T any](ctx context.Context, src Source[T], pageSize int64, token string) (*Page[T], error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidArgument, pageSize)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: source is nil", ErrInvalidArgument)
	}

	state, err := startState(ctx, src, pageSize, token)
	if err != nil {
		return nil, err
	}

	items, err := src.FetchSlice(ctx, state.Offset, state.PageSize)
	if err != nil {
		return nil, &SourceError{Op: "fetch", Err: err}
	}
	if items == nil {
		items = make([]T, 0)
	}

	page := &Page[T]{
		Items:      items,
		TotalItems: state.TotalCount,
		State:      state,
	}

	next, more := state.Advance(int64(len(items)))
	if !more {
		return page, nil
	}

	page.NextToken, err = EncodeToken(next)
	if err != nil {
		return nil, err
	}
	page.HasNext = true
	return page, nil
}

// FirstToken returns a token positioned at the start of a traversal.
// Paginating with it skips the count that an empty token would trigger.
func FirstToken(ctx context.Context, src Counter, pageSize int64) (string, error) {
	if pageSize <= 0 {
		return "", fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidArgument, pageSize)
	}
	total, err := count(ctx, src)
	if err != nil {
		return "", err
	}
	return EncodeToken(NewState(total, pageSize))
}

func startState(ctx context.Context, src Counter, pageSize int64, token string) (State, error) {
	if token == "" {
		total, err := count(ctx, src)
		if err != nil {
			return State{}, err
		}
		return NewState(total, pageSize), nil
	}

	state, err := DecodeToken(token)
	if err != nil {
		return State{}, err
	}
	if err := state.checkRange(pageSize); err != nil {
		return State{}, invalidToken("position out of range", err)
	}
	state.PageSize = pageSize
	return state, nil
}

func count(ctx context.Context, src Counter) (int64, error) {
	total, err := src.Count(ctx)
	if err != nil {
		return 0, &SourceError{Op: "count", Err: err}
	}
	if total < 0 {
		return 0, &SourceError{Op: "count", Err: fmt.Errorf("negative count %d", total)}
	}
	return total, nil
}
