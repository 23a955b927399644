package paging

import (
	"context"
	"fmt"
)

// Walk drives a traversal of src from an empty token until the last page,
// calling fn with each page in order. It stops early when fn fails, when
// ctx is done between pages, or with ErrNoProgress when a non-terminal
// page comes back empty.
func Walk[T any](ctx context.Context, src Source[T], pageSize int64, fn func(*Page[T]) error) error {
	var token string
	for {
		page, err := Paginate(ctx, src, pageSize, token)
		if err != nil {
			return err
		}
		if err := fn(page); err != nil {
			return err
		}
		if !page.HasNext {
			return nil
		}
		if len(page.Items) == 0 {
			return fmt.Errorf("%w: empty page %d at offset %d with %d remaining",
				ErrNoProgress, page.State.PageNum, page.State.Offset, page.State.Remaining)
		}
		token = page.NextToken

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}
