package motion

import (
	"github.com/sirupsen/logrus"

	"github.com/viant/motion/model"
	"github.com/viant/motion/progress"
	"github.com/viant/motion/runtime/token"
	"github.com/viant/motion/runtime/tracer"
	"github.com/viant/motion/runtime/transaction"
)

// host exposes runtime services to target scopes.
type host struct {
	runtime *Runtime
}

func (h *host) PlanEmitter(target interface{}) model.PlanEmitting {
	return &planEmitter{runtime: h.runtime, target: target}
}

func (h *host) Pool() *token.Pool { return h.runtime.pool }
func (h *host) Reachable() bool { return !h.runtime.closed }
func (h *host) Tracers() *tracer.Set { return &h.runtime.tracers }
func (h *host) Batch() *transaction.Batch { return &h.runtime.batch }
func (h *host) Progress() *progress.Progress { return h.runtime.progress }
func (h *host) Logger() logrus.FieldLogger { return h.runtime.logger }

// planEmitter submits plans emitted by a performer to its own target.
type planEmitter struct {
	runtime *Runtime
	target  interface{}
}

// Emit adds plan to the emitter target; plans emitted after the runtime
// closed are dropped.
func (e *planEmitter) Emit(plan model.Plan) {
	if e.runtime.closed {
		return
	}
	e.runtime.Execute(transaction.New().AddPlan(plan, e.target))
}

// poolListener reacts to token pool changes.
type poolListener struct {
	runtime *Runtime
}

func (l *poolListener) TokenGenerated(t *token.Token, active int) {
	l.runtime.progress.Update(progress.Delta{TokensGenerated: 1})
	if l.runtime.metrics != nil {
		l.runtime.metrics.ObserveTokens(active)
	}
}

func (l *poolListener) TokenTerminated(t *token.Token, active int) {
	l.runtime.progress.Update(progress.Delta{TokensTerminated: 1})
	if l.runtime.metrics != nil {
		l.runtime.metrics.ObserveTokens(active)
	}
}

func (l *poolListener) ActivityChanged(active bool) {
	r := l.runtime
	r.progress.Update(progress.Delta{Transitions: 1})
	if r.metrics != nil {
		r.metrics.ObserveActivity(active)
	}
	r.logger.WithField("state", r.ActivityState().String()).Debug("activity state changed")
	if r.delegate != nil {
		r.delegate.ActivityStateDidChange(r)
	}
}
