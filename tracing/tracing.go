package tracing

import (
	"context"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies spans created by this module.
const InstrumentationName = "github.com/viant/motion"

// Init configures OpenTelemetry with the stdout exporter. Traces go to
// os.Stdout when outputFile is empty, otherwise to the named file. The first
// successful initialisation wins; later calls do not touch outputFile.
func Init(serviceName, serviceVersion, outputFile string) error {
	return installProvider(serviceName, serviceVersion, func() (sdktrace.SpanExporter, error) {
		if outputFile == "" {
			return stdouttrace.New(stdouttrace.WithWriter(os.Stdout))
		}
		f, err := os.Create(outputFile)
		if err != nil {
			return nil, err
		}
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(f))
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		output = f
		return exporter, nil
	})
}

// InitWithExporter configures OpenTelemetry with the supplied exporter. The
// first successful initialisation wins.
func InitWithExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	if exporter == nil {
		return nil
	}
	return installProvider(serviceName, serviceVersion, func() (sdktrace.SpanExporter, error) {
		return exporter, nil
	})
}

var (
	providerOnce sync.Once
	providerErr  error
	provider     *sdktrace.TracerProvider
	output       io.Closer
)

func installProvider(serviceName, serviceVersion string, newExporter func() (sdktrace.SpanExporter, error)) error {
	providerOnce.Do(func() {
		exporter, err := newExporter()
		if err != nil {
			providerErr = err
			return
		}
		if provider, err = NewProvider(serviceName, serviceVersion, exporter); err != nil {
			providerErr = err
			return
		}
		otel.SetTracerProvider(provider)
	})
	return providerErr
}

// Shutdown flushes and stops the installed provider and closes the trace
// output file, if any.
func Shutdown(ctx context.Context) error {
	var err error
	if provider != nil {
		err = provider.Shutdown(ctx)
	}
	if output != nil {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
		output = nil
	}
	return err
}

// NewProvider builds a tracer provider exporting synchronously to exporter,
// without installing it globally.
func NewProvider(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) (*sdktrace.TracerProvider, error) {
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
	)
	if err != nil {
		return nil, err
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
		sdktrace.WithResource(res),
	), nil
}

// Span wraps an OpenTelemetry span.
type Span struct {
	span trace.Span
}

// WithAttributes attaches all provided attributes to the span.
func (s *Span) WithAttributes(attrs map[string]string) *Span {
	if s == nil || len(attrs) == 0 {
		return s
	}
	otelAttrs := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		otelAttrs = append(otelAttrs, attribute.String(k, v))
	}
	s.span.SetAttributes(otelAttrs...)
	return s
}

// SetStatus records an error status on the span, or OK when err is nil.
func (s *Span) SetStatus(err error) {
	if s == nil {
		return
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
		return
	}
	s.span.SetStatus(codes.Ok, "")
}

// StartSpan starts an internal span using the global tracer provider.
func StartSpan(ctx context.Context, name string) (context.Context, *Span) {
	return startSpan(ctx, otel.Tracer(InstrumentationName), name)
}

func startSpan(ctx context.Context, tracer trace.Tracer, name string) (context.Context, *Span) {
	parent := trace.SpanFromContext(ctx)
	ctx, span := tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	if sc := parent.SpanContext(); sc.IsValid() {
		span.SetAttributes(
			attribute.String("parent.trace_id", sc.TraceID().String()),
			attribute.String("parent.span_id", sc.SpanID().String()),
		)
	}
	return ctx, &Span{span: span}
}

// EndSpan finalises the span recording status from err.
func EndSpan(sp *Span, err error) {
	if sp == nil {
		return
	}
	sp.SetStatus(err)
	sp.span.End()
}
