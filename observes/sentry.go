package observes

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/ncobase/sqlpage/ctxutil"
)

type SentryOption struct {
	Dsn         string
	Name        string
	Release     string
	Environment string
	SampleRate  float64
}

// NewSentry initializes the global sentry client. The returned func flushes
// buffered events.
func NewSentry(opt *SentryOption) (func(), error) {
	if opt == nil {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              opt.Dsn,
		AttachStacktrace: true,
		SampleRate:       opt.SampleRate,
		ServerName:       opt.Name,
		Release:          opt.Release,
		Environment:      opt.Environment,
	})
	if err != nil {
		return nil, err
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}

// CaptureError reports err with the request trace id attached. It is a no-op
// until NewSentry has run.
func CaptureError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if id := ctxutil.GetTraceID(ctx); id != "" {
			scope.SetTag("trace_id", id)
		}
	})
	hub.CaptureException(err)
}
