package motion

import (
	"context"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/viant/motion/internal/clock"
	"github.com/viant/motion/metrics"
	"github.com/viant/motion/model"
	"github.com/viant/motion/progress"
	"github.com/viant/motion/runtime/scope"
	"github.com/viant/motion/runtime/token"
	"github.com/viant/motion/runtime/tracer"
	"github.com/viant/motion/runtime/transaction"
	"github.com/viant/motion/tracing"
)

// ActivityState reports whether any continuous performance is in progress.
type ActivityState int

const (
	// Idle means no token is active.
	Idle ActivityState = iota
	// Active means at least one token is active.
	Active
)

// String returns the state name.
func (s ActivityState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	}
	return "ActivityState(" + strconv.Itoa(int(s)) + ")"
}

// Delegate is notified once per activity state transition.
type Delegate interface {
	ActivityStateDidChange(runtime *Runtime)
}

// Runtime dispatches plans to performers.
type Runtime struct {
	scopes   *scope.Registry
	pool     *token.Pool
	tracers  tracer.Set
	batch    transaction.Batch
	delegate Delegate
	logger   logrus.FieldLogger
	progress *progress.Progress
	metrics  *metrics.Collector
	tracing  bool
	traceCtx context.Context
	closed   bool

	// consumed by NewFromConfig
	registerer prometheus.Registerer
	exporter   sdktrace.SpanExporter
}

// AddPlan adds plan to target.
func (r *Runtime) AddPlan(plan model.Plan, target interface{}) {
	r.Execute(transaction.New().AddPlan(plan, target))
}

// AddPlans adds every plan to target, in order, as a single log.
func (r *Runtime) AddPlans(plans []model.Plan, target interface{}) {
	r.Execute(transaction.New().AddPlans(plans, target))
}

// AddNamedPlan adds plan to target under name, replacing any plans
// previously added under the same name.
func (r *Runtime) AddNamedPlan(plan model.NamedPlan, name string, target interface{}) {
	r.Execute(transaction.New().AddNamedPlan(plan, name, target))
}

// RemovePlanNamed removes the plans added to target under name. Removing an
// unbound name is a no-op.
func (r *Runtime) RemovePlanNamed(name string, target interface{}) {
	r.Execute(transaction.New().RemovePlanNamed(name, target))
}

// Execute applies the log operations in order. Logs executed while another
// log is running, e.g. plans emitted by performers, complete before control
// returns to the operation that triggered them. Batched tracer events are
// emitted once the outermost log finishes.
func (r *Runtime) Execute(log *transaction.Log) {
	r.ensureOpen()
	if log == nil || log.Len() == 0 {
		return
	}
	r.batch.Begin()
	completed := false
	defer func() {
		if !completed {
			r.batch.Abort()
		}
	}()
	if r.tracing && r.batch.Depth() == 1 {
		ctx, span := tracing.StartSpan(context.Background(), "motion.execute")
		span.WithAttributes(map[string]string{"operations": strconv.Itoa(log.Len())})
		r.traceCtx = ctx
		defer func() {
			r.traceCtx = nil
			tracing.EndSpan(span, nil)
		}()
	}
	for _, operation := range log.Operations() {
		// a performer may close the runtime while the log is running
		if r.closed {
			break
		}
		r.apply(operation)
	}
	commit, created, top := r.batch.End()
	completed = true
	if !top {
		return
	}
	if !commit.IsEmpty() {
		r.tracers.PlansCommitted(commit)
	}
	if len(created) > 0 {
		r.tracers.PerformersCreated(created)
	}
}

func (r *Runtime) apply(operation *model.Operation) {
	if operation.Target == nil {
		panic(fmt.Sprintf("motion: %s target is nil", operation.Kind))
	}
	targetScope := r.scopes.Scope(operation.Target)
	switch operation.Kind {
	case model.OperationAddPlan:
		targetScope.AddPlan(operation.Plan)
	case model.OperationAddNamedPlan:
		named, ok := operation.Plan.(model.NamedPlan)
		if !ok {
			panic(fmt.Sprintf("motion: %T is not a named plan", operation.Plan))
		}
		targetScope.AddNamedPlan(named, operation.Name)
	case model.OperationRemovePlanNamed:
		targetScope.RemovePlanNamed(operation.Name)
	default:
		panic(fmt.Sprintf("motion: unsupported operation %q", operation.Kind))
	}
}

// TraceContext returns the context carrying the span of the top-level log
// being executed, or context.Background when tracing is disabled or no log
// is running.
func (r *Runtime) TraceContext() context.Context {
	if r.traceCtx == nil {
		return context.Background()
	}
	return r.traceCtx
}

// AddTracer registers a tracer. Adding a tracer twice is a no-op.
func (r *Runtime) AddTracer(t interface{}) {
	if r.tracers.Add(t) {
		r.logger.WithField("tracer", fmt.Sprintf("%T", t)).Debug("tracer added")
	}
}

// RemoveTracer unregisters a tracer.
func (r *Runtime) RemoveTracer(t interface{}) {
	if r.tracers.Remove(t) {
		r.logger.WithField("tracer", fmt.Sprintf("%T", t)).Debug("tracer removed")
	}
}

// Tracers returns the registered tracers in registration order.
func (r *Runtime) Tracers() []interface{} {
	return r.tracers.List()
}

// ActivityState returns Active while at least one token is active.
func (r *Runtime) ActivityState() ActivityState {
	if r.pool.IsActive() {
		return Active
	}
	return Idle
}

// SetDelegate sets the activity delegate; nil clears it.
func (r *Runtime) SetDelegate(delegate Delegate) {
	r.delegate = delegate
}

// Stats returns a snapshot of the dispatch counters.
func (r *Runtime) Stats() progress.Progress {
	return r.progress.Snapshot()
}

// Close releases every target scope. Token generators stop producing tokens
// and plan emitters drop emitted plans; calling plan operations on a closed
// runtime panics. When a performer closes the runtime during dispatch, the
// remaining operations of the running logs are skipped. Tokens that are
// still active may be terminated.
func (r *Runtime) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.scopes.Release()
	r.logger.Debug("runtime closed")
}

func (r *Runtime) ensureOpen() {
	if r.closed {
		panic("motion: runtime is closed")
	}
}

// New creates a runtime.
func New(options ...Option) *Runtime {
	ret := &Runtime{}
	for _, option := range options {
		option(ret)
	}
	if ret.logger == nil {
		ret.logger = logrus.StandardLogger()
	}
	if ret.progress == nil {
		ret.progress = progress.New(clock.Now(), nil)
	}
	if ret.metrics != nil {
		ret.tracers.Add(ret.metrics)
	}
	ret.pool = token.NewPool(&poolListener{runtime: ret})
	ret.scopes = scope.NewRegistry(&host{runtime: ret})
	return ret
}
