package observes

import (
	"context"

	"github.com/ncobase/sqlpage/paging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ncobase/sqlpage"

// TraceOption customizes Traced.
type TraceOption func(*traced)

// WithTracerProvider records spans on tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) TraceOption {
	return func(t *traced) { t.provider = tp }
}

type traced struct {
	provider trace.TracerProvider
}

// Traced wraps src so that every Count and FetchSlice call is recorded as a
// span named "<name>.Count" or "<name>.FetchSlice".
func Traced[T any](src paging.Source[T], name string, opts ...TraceOption) paging.Source[T] {
	cfg := &traced{}
	for _, opt := range opts {
		opt(cfg)
	}
	tp := cfg.provider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &tracedSource[T]{
		src:    src,
		name:   name,
		tracer: tp.Tracer(instrumentationName),
	}
}

type tracedSource[T any] struct {
	src    paging.Source[T]
	name   string
	tracer trace.Tracer
}

func (s *tracedSource[T]) Count(ctx context.Context) (int64, error) {
	ctx, span := s.tracer.Start(ctx, s.name+".Count")
	defer span.End()

	n, err := s.src.Count(ctx)
	if err != nil {
		fail(span, err)
		return n, err
	}
	span.SetAttributes(attribute.Int64("paging.total", n))
	span.SetStatus(codes.Ok, "")
	return n, nil
}

func (s *tracedSource[T]) FetchSlice(ctx context.Context, offset, limit int64) ([]T, error) {
	ctx, span := s.tracer.Start(ctx, s.name+".FetchSlice", trace.WithAttributes(
		attribute.Int64("paging.offset", offset),
		attribute.Int64("paging.limit", limit),
	))
	defer span.End()

	items, err := s.src.FetchSlice(ctx, offset, limit)
	if err != nil {
		fail(span, err)
		return items, err
	}
	span.SetAttributes(attribute.Int("paging.fetched", len(items)))
	span.SetStatus(codes.Ok, "")
	return items, nil
}

func fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
