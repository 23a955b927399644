package observes

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type TracerOption struct {
	URL                string
	Name               string
	Version            string
	Environment        string
	Insecure           bool
	Headers            map[string]string
	SamplingRate       float64
	BatchTimeout       time.Duration
	ExportTimeout      time.Duration
	MaxExportBatchSize int
}

// NewTracer installs a global tracer provider exporting over OTLP gRPC.
// The returned func flushes and stops it.
func NewTracer(ctx context.Context, opt *TracerOption) (func(context.Context) error, error) {
	if opt == nil {
		return nil, errors.New("tracer config is nil")
	}

	exportOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(opt.URL)}
	if opt.Insecure {
		exportOpts = append(exportOpts, otlptracegrpc.WithInsecure())
	}
	if len(opt.Headers) > 0 {
		exportOpts = append(exportOpts, otlptracegrpc.WithHeaders(opt.Headers))
	}
	exp, err := otlptracegrpc.New(ctx, exportOpts...)
	if err != nil {
		return nil, errors.Join(errors.New("failed to create exporter"), err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(opt.Name),
			semconv.ServiceVersionKey.String(opt.Version),
			attribute.String("environment", opt.Environment),
		),
	)
	if err != nil {
		return nil, errors.Join(errors.New("failed to create resource"), err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opt.SamplingRate))),
		sdktrace.WithBatcher(exp,
			sdktrace.WithMaxExportBatchSize(opt.MaxExportBatchSize),
			sdktrace.WithBatchTimeout(opt.BatchTimeout),
			sdktrace.WithExportTimeout(opt.ExportTimeout),
		),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	return tp.Shutdown, nil
}
