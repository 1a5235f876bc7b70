package desktopapi

import (
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultMaxConcurrency bounds in-flight handler calls on a Host.
	DefaultMaxConcurrency = 64

	instrumentationName = "github.com/zed-industries/desktop-api-bindings"
)

// Option configures a Client or Host.
type Option func(*options)

type options struct {
	logger         zerolog.Logger
	metrics        *Metrics
	tracerProvider trace.TracerProvider
	maxConcurrency int64
}

func newOptions(opts []Option) options {
	o := options{
		logger:         zerolog.Nop(),
		maxConcurrency: DefaultMaxConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracerProvider == nil {
		o.tracerProvider = otel.GetTracerProvider()
	}
	return o
}

func (o options) tracer() trace.Tracer {
	return o.tracerProvider.Tracer(instrumentationName)
}

// WithLogger directs connection diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics records request counts and latencies into m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithTracerProvider sets the provider for request spans. The global
// provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// WithMaxConcurrency bounds concurrent handler calls on a Host. Values
// below 1 are ignored. Clients ignore it.
func WithMaxConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxConcurrency = int64(n)
		}
	}
}
