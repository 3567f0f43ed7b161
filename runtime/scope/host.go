package scope

import (
	"github.com/sirupsen/logrus"
	"github.com/viant/motion/model"
	"github.com/viant/motion/progress"
	"github.com/viant/motion/runtime/token"
	"github.com/viant/motion/runtime/tracer"
	"github.com/viant/motion/runtime/transaction"
)

// Host exposes the runtime services a scope dispatches through.
type Host interface {
	// PlanEmitter returns an emitter submitting plans to the target.
	PlanEmitter(target interface{}) model.PlanEmitting
	// Pool returns the runtime token pool.
	Pool() *token.Pool
	// Reachable reports whether the runtime still accepts work.
	Reachable() bool
	Tracers() *tracer.Set
	Batch() *transaction.Batch
	Progress() *progress.Progress
	Logger() logrus.FieldLogger
}
