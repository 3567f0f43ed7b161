package tracer

import (
	"fmt"
	"reflect"

	"github.com/viant/motion/model"
)

// Set is an insertion ordered set of tracers. Membership is by identity, so
// tracers must be comparable values, typically pointers.
type Set struct {
	tracers []interface{}
}

// Add appends the tracer. Adding a nil tracer or one already present is a
// no-op; the return value reports whether the set changed.
func (s *Set) Add(tracer interface{}) bool {
	if tracer == nil {
		return false
	}
	if !reflect.ValueOf(tracer).Comparable() {
		panic(fmt.Sprintf("tracer: %T is not comparable", tracer))
	}
	if s.index(tracer) != -1 {
		return false
	}
	s.tracers = append(s.tracers, tracer)
	return true
}

// Remove deletes the tracer, reporting whether it was present.
func (s *Set) Remove(tracer interface{}) bool {
	if tracer == nil || !reflect.ValueOf(tracer).Comparable() {
		return false
	}
	idx := s.index(tracer)
	if idx == -1 {
		return false
	}
	s.tracers = append(s.tracers[:idx:idx], s.tracers[idx+1:]...)
	return true
}

// List returns a copy of the registered tracers in registration order.
func (s *Set) List() []interface{} {
	return append([]interface{}{}, s.tracers...)
}

// Len returns the number of tracers.
func (s *Set) Len() int {
	return len(s.tracers)
}

func (s *Set) index(tracer interface{}) int {
	for i, candidate := range s.tracers {
		if candidate == tracer {
			return i
		}
	}
	return -1
}

// PlanAdded notifies PlanAddedTracer implementations.
func (s *Set) PlanAdded(plan model.Plan, target interface{}) {
	for _, t := range s.List() {
		if hook, ok := t.(model.PlanAddedTracer); ok {
			hook.OnPlanAdded(plan, target)
		}
	}
}

// NamedPlanAdded notifies NamedPlanAddedTracer implementations; tracers that
// only observe plain plans receive OnPlanAdded instead.
func (s *Set) NamedPlanAdded(plan model.NamedPlan, name string, target interface{}) {
	for _, t := range s.List() {
		switch hook := t.(type) {
		case model.NamedPlanAddedTracer:
			hook.OnNamedPlanAdded(plan, name, target)
		case model.PlanAddedTracer:
			hook.OnPlanAdded(plan, target)
		}
	}
}

// NamedPlanRemoved notifies NamedPlanRemovedTracer implementations.
func (s *Set) NamedPlanRemoved(name string, target interface{}) {
	for _, t := range s.List() {
		if hook, ok := t.(model.NamedPlanRemovedTracer); ok {
			hook.OnNamedPlanRemoved(name, target)
		}
	}
}

// PerformerCreated notifies PerformerCreatedTracer implementations.
func (s *Set) PerformerCreated(performer model.Performing, target interface{}) {
	for _, t := range s.List() {
		if hook, ok := t.(model.PerformerCreatedTracer); ok {
			hook.OnPerformerCreated(performer, target)
		}
	}
}

// PlansCommitted delivers the batched commit event.
func (s *Set) PlansCommitted(commit *model.Commit) {
	for _, t := range s.List() {
		if hook, ok := t.(model.PlansCommittedTracer); ok {
			hook.OnPlansCommitted(commit)
		}
	}
}

// PerformersCreated delivers the batched creation event.
func (s *Set) PerformersCreated(created []*model.Creation) {
	for _, t := range s.List() {
		if hook, ok := t.(model.PerformersCreatedTracer); ok {
			hook.OnPerformersCreated(created)
		}
	}
}
