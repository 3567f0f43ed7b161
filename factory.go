package motion

import (
	"fmt"

	"github.com/viant/motion/logging"
	"github.com/viant/motion/metrics"
	"github.com/viant/motion/runtime/tracer"
	"github.com/viant/motion/tracing"
)

// NewFromConfig creates a runtime from cfg (DefaultConfig when nil). Options
// are applied after the configuration, so WithLogger overrides the configured
// logger. Tracer names other than the built-in console, metrics and otel are
// resolved through the tracer registry.
func NewFromConfig(cfg *Config, options ...Option) (*Runtime, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	logger, err := logging.New(cfg.Logging, nil)
	if err != nil {
		return nil, err
	}
	ret := New(append([]Option{WithLogger(logger)}, options...)...)
	ownMetrics := ret.metrics == nil

	if cfg.Tracing.Enabled {
		if ret.exporter != nil {
			err = tracing.InitWithExporter(cfg.Tracing.ServiceName, cfg.Tracing.ServiceVersion, ret.exporter)
		} else {
			err = tracing.Init(cfg.Tracing.ServiceName, cfg.Tracing.ServiceVersion, cfg.Tracing.OutputFile)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to init tracing: %w", err)
		}
		ret.tracing = true
	}
	if cfg.Metrics.Enabled {
		ret.enableMetrics(cfg.Metrics.Namespace)
	}
	for _, name := range cfg.Tracers {
		switch name {
		case TracerConsole:
			ret.AddTracer(logging.NewTracer(ret.logger))
		case TracerMetrics:
			ret.enableMetrics(cfg.Metrics.Namespace)
		case TracerOtel:
			ret.AddTracer(tracing.NewTracer(tracing.WithParentContext(ret.TraceContext)))
		default:
			t, err := tracer.Lookup(name)
			if err != nil {
				return nil, fmt.Errorf("failed to create tracer: %w", err)
			}
			ret.AddTracer(t)
		}
	}
	if ownMetrics && ret.metrics != nil && ret.registerer != nil {
		if err := ret.metrics.Register(ret.registerer); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return ret, nil
}

func (r *Runtime) enableMetrics(namespace string) {
	if r.metrics == nil {
		r.metrics = metrics.NewCollector(namespace)
	}
	r.AddTracer(r.metrics)
}
