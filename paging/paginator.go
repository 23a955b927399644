package paging

import (
	"context"
	"errors"

	"github.com/ncobase/sqlpage/logging/logger"
)

// Params holds the pagination parameters of a request.
type Params struct {
	Token    string `json:"page_token" form:"page_token"`
	PageSize int64  `json:"page_size" form:"page_size" validate:"gte=0"`
}

// Option configures a Paginator.
type Option func(*options)

type options struct {
	defaultPageSize int64
	maxPageSize     int64
	logger          *logger.Logger
}

// WithDefaultPageSize sets the page size used when Params.PageSize is zero.
func WithDefaultPageSize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.defaultPageSize = n
		}
	}
}

// WithMaxPageSize caps requested page sizes. Zero disables the cap.
func WithMaxPageSize(n int64) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxPageSize = n
		}
	}
}

// WithLogger sets the logger; the standard logger is used otherwise.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Paginator binds a Source to request defaults. It holds no traversal state
// and is safe for concurrent use.
type Paginator[T any] struct {
	src  Source[T]
	opts options
}

// NewPaginator creates a Paginator over src.
func NewPaginator[T any](src Source[T], opts ...Option) *Paginator[T] {
	o := options{defaultPageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.StdLogger()
	}
	return &Paginator[T]{src: src, opts: o}
}

// NormalizeParams applies the default page size to an unset page size and
// caps it at the maximum. Negative sizes are left for Paginate to reject.
func (p *Paginator[T]) NormalizeParams(params Params) Params {
	if params.PageSize == 0 {
		params.PageSize = p.opts.defaultPageSize
	}
	if p.opts.maxPageSize > 0 && params.PageSize > p.opts.maxPageSize {
		params.PageSize = p.opts.maxPageSize
	}
	return params
}

// Paginate fetches the page described by params.
func (p *Paginator[T]) Paginate(ctx context.Context, params Params) (*Page[T], error) {
	params = p.NormalizeParams(params)

	page, err := Paginate(ctx, p.src, params.PageSize, params.Token)
	if err != nil {
		switch {
		case errors.Is(err, ErrSource):
			p.opts.logger.Error(ctx, "pagination source failed", "error", err)
		default:
			p.opts.logger.Warn(ctx, "pagination request rejected", "error", err)
		}
		return nil, err
	}

	p.opts.logger.Debug(ctx, "page fetched",
		"page_num", page.State.PageNum,
		"offset", page.State.Offset,
		"page_size", page.State.PageSize,
		"fetched", len(page.Items),
		"total_count", page.TotalItems,
		"has_next", page.HasNext,
	)
	return page, nil
}

// Walk traverses src from the first page, calling fn for every page.
func (p *Paginator[T]) Walk(ctx context.Context, pageSize int64, fn func(*Page[T]) error) error {
	params := p.NormalizeParams(Params{PageSize: pageSize})
	return Walk(ctx, p.src, params.PageSize, fn)
}
