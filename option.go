package motion

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/viant/motion/metrics"
	"github.com/viant/motion/progress"
)

// Option customises a Runtime.
type Option func(r *Runtime)

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// WithTracers registers tracers in the supplied order.
func WithTracers(tracers ...interface{}) Option {
	return func(r *Runtime) {
		for _, t := range tracers {
			r.tracers.Add(t)
		}
	}
}

// WithDelegate sets the activity delegate.
func WithDelegate(delegate Delegate) Option {
	return func(r *Runtime) {
		r.delegate = delegate
	}
}

// WithMetrics attaches a metrics collector. The collector receives tracer
// events and token observations; registering it is up to the caller.
func WithMetrics(collector *metrics.Collector) Option {
	return func(r *Runtime) {
		r.metrics = collector
	}
}

// WithRegisterer sets the registerer NewFromConfig registers its metrics
// collector with.
func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(r *Runtime) {
		r.registerer = registerer
	}
}

// WithTracing enables a span per top-level log execution using the global
// OpenTelemetry tracer provider.
func WithTracing(enabled bool) Option {
	return func(r *Runtime) {
		r.tracing = enabled
	}
}

// WithTracingExporter sets the span exporter NewFromConfig initialises
// tracing with, instead of the stdout exporter.
func WithTracingExporter(exporter sdktrace.SpanExporter) Option {
	return func(r *Runtime) {
		r.exporter = exporter
	}
}

// WithProgress sets the dispatch counters tracker.
func WithProgress(p *progress.Progress) Option {
	return func(r *Runtime) {
		r.progress = p
	}
}
