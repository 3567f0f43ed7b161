package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/viant/motion/model"
)

// Tracer logs runtime events at info level.
type Tracer struct {
	logger logrus.FieldLogger
}

// OnPlanAdded logs an added plan.
func (t *Tracer) OnPlanAdded(plan model.Plan, target interface{}) {
	t.logger.WithFields(fields(target)).Infof("didAddPlan: %s", describePlan(plan))
}

// OnNamedPlanAdded logs an added named plan.
func (t *Tracer) OnNamedPlanAdded(plan model.NamedPlan, name string, target interface{}) {
	t.logger.WithFields(fields(target)).Infof("didAddPlan: %s named: %s", describePlan(plan), name)
}

// OnNamedPlanRemoved logs a removed name.
func (t *Tracer) OnNamedPlanRemoved(name string, target interface{}) {
	t.logger.WithFields(fields(target)).Infof("didRemovePlanNamed: %s", name)
}

// OnPerformerCreated logs a new performer.
func (t *Tracer) OnPerformerCreated(performer model.Performing, target interface{}) {
	t.logger.WithFields(fields(target)).Infof("didCreatePerformer: %T", performer)
}

// OnPlansCommitted logs a commit summary at debug level.
func (t *Tracer) OnPlansCommitted(commit *model.Commit) {
	t.logger.WithFields(logrus.Fields{
		"added":   len(commit.Added),
		"removed": len(commit.Removed),
	}).Debug("didCommitPlans")
}

func describePlan(plan model.Plan) string {
	if plan == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T (%s)", plan, plan.PerformerClass())
}

func fields(target interface{}) logrus.Fields {
	return logrus.Fields{"target": fmt.Sprintf("%T", target)}
}

// NewTracer creates a tracer writing to logger.
func NewTracer(logger logrus.FieldLogger) *Tracer {
	return &Tracer{logger: logger}
}
