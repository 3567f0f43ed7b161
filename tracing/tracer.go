package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/viant/motion/model"
)

// Span names emitted by Tracer.
const (
	SpanPlanAdded         = "motion.planAdded"
	SpanNamedPlanAdded    = "motion.namedPlanAdded"
	SpanNamedPlanRemoved  = "motion.namedPlanRemoved"
	SpanPerformerCreated  = "motion.performerCreated"
	SpanPlansCommitted    = "motion.plansCommitted"
	SpanPerformersCreated = "motion.performersCreated"
)

// Tracer records runtime lifecycle events as OpenTelemetry spans.
type Tracer struct {
	tracer trace.Tracer
	parent func() context.Context
}

// TracerOption customises a Tracer.
type TracerOption func(t *Tracer)

// WithTracerProvider makes the tracer use provider instead of the global one.
func WithTracerProvider(provider trace.TracerProvider) TracerOption {
	return func(t *Tracer) {
		t.tracer = provider.Tracer(InstrumentationName)
	}
}

// WithParentContext sets the function supplying the context event spans are
// started from, typically one carrying the span of the running log.
func WithParentContext(parent func() context.Context) TracerOption {
	return func(t *Tracer) {
		t.parent = parent
	}
}

// OnPlanAdded records a plan delivery.
func (t *Tracer) OnPlanAdded(plan model.Plan, target interface{}) {
	t.record(SpanPlanAdded,
		attribute.String("plan.type", fmt.Sprintf("%T", plan)),
		attribute.String("performer.class", plan.PerformerClass().String()),
		attribute.String("target.type", fmt.Sprintf("%T", target)),
	)
}

// OnNamedPlanAdded records a named plan delivery.
func (t *Tracer) OnNamedPlanAdded(plan model.NamedPlan, name string, target interface{}) {
	t.record(SpanNamedPlanAdded,
		attribute.String("plan.type", fmt.Sprintf("%T", plan)),
		attribute.String("plan.name", name),
		attribute.String("performer.class", plan.PerformerClass().String()),
		attribute.String("target.type", fmt.Sprintf("%T", target)),
	)
}

// OnNamedPlanRemoved records a named plan removal.
func (t *Tracer) OnNamedPlanRemoved(name string, target interface{}) {
	t.record(SpanNamedPlanRemoved,
		attribute.String("plan.name", name),
		attribute.String("target.type", fmt.Sprintf("%T", target)),
	)
}

// OnPerformerCreated records a performer instantiation.
func (t *Tracer) OnPerformerCreated(performer model.Performing, target interface{}) {
	t.record(SpanPerformerCreated,
		attribute.String("performer.type", fmt.Sprintf("%T", performer)),
		attribute.String("target.type", fmt.Sprintf("%T", target)),
	)
}

// OnPlansCommitted records a top-level commit.
func (t *Tracer) OnPlansCommitted(commit *model.Commit) {
	t.record(SpanPlansCommitted,
		attribute.Int("plans.added", len(commit.Added)),
		attribute.Int("plans.removed", len(commit.Removed)),
	)
}

// OnPerformersCreated records the performers created by a top-level submission.
func (t *Tracer) OnPerformersCreated(created []*model.Creation) {
	classes := make([]string, 0, len(created))
	for _, creation := range created {
		classes = append(classes, creation.Class.String())
	}
	t.record(SpanPerformersCreated,
		attribute.Int("performers.count", len(created)),
		attribute.StringSlice("performer.classes", classes),
	)
}

func (t *Tracer) record(name string, attrs ...attribute.KeyValue) {
	ctx := context.Background()
	if t.parent != nil {
		ctx = t.parent()
	}
	_, span := t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	span.End()
}

// NewTracer creates a runtime tracer.
func NewTracer(opts ...TracerOption) *Tracer {
	ret := &Tracer{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.tracer == nil {
		ret.tracer = otel.Tracer(InstrumentationName)
	}
	return ret
}
