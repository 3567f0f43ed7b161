package scope

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/viant/motion/model"
	"github.com/viant/motion/progress"
	"github.com/viant/motion/runtime/token"
)

// TargetScope manages the performers associated with one target.
type TargetScope struct {
	target     interface{}
	host       Host
	performers map[*model.Class]model.Performing
	classes    []*model.Class
	names      map[string][]*model.Class
	released   bool
}

// Target returns the scope target.
func (s *TargetScope) Target() interface{} {
	return s.target
}

// AddPlan resolves the plan's performer, creating it on first use, and
// delivers the plan to it.
func (s *TargetScope) AddPlan(plan model.Plan) {
	class := resolve(plan)
	s.host.Batch().Record(&model.Operation{Kind: model.OperationAddPlan, Plan: plan, Target: s.target})
	performer, created := s.performer(class)
	if intake, ok := performer.(model.PlanPerforming); ok {
		intake.AddPlan(plan)
	} else if !created {
		panic(fmt.Sprintf("scope: performer %q (%T) cannot accept additional plans", class, performer))
	}
	s.host.Progress().Update(progress.Delta{Plans: 1})
	s.host.Tracers().PlanAdded(plan, s.target)
}

// AddNamedPlan adds the plan under name. A name already bound on this target
// is removed first, so adding under an existing name replaces it.
func (s *TargetScope) AddNamedPlan(plan model.NamedPlan, name string) {
	class := resolve(plan)
	if _, ok := s.names[name]; ok {
		s.RemovePlanNamed(name)
	}
	s.host.Batch().Record(&model.Operation{Kind: model.OperationAddNamedPlan, Plan: plan, Name: name, Target: s.target})
	performer, created := s.performer(class)
	switch intake := performer.(type) {
	case model.NamedPlanPerforming:
		intake.AddNamedPlan(plan, name)
	case model.PlanPerforming:
		intake.AddPlan(plan)
	default:
		if !created {
			panic(fmt.Sprintf("scope: performer %q (%T) cannot accept additional plans", class, performer))
		}
	}
	s.bind(name, class)
	s.host.Progress().Update(progress.Delta{Plans: 1, NamedPlans: 1})
	s.host.Tracers().NamedPlanAdded(plan, name, s.target)
}

// RemovePlanNamed invokes the removal hook of every performer bound to name
// and clears the binding. It reports whether the name was bound.
func (s *TargetScope) RemovePlanNamed(name string) bool {
	classes, ok := s.names[name]
	if !ok {
		return false
	}
	// unbind first so that removal hooks may rebind the name
	delete(s.names, name)
	s.host.Batch().Record(&model.Operation{Kind: model.OperationRemovePlanNamed, Name: name, Target: s.target})
	for _, class := range classes {
		if performer, ok := s.performers[class].(model.NamedPlanPerforming); ok {
			performer.RemovePlanNamed(name)
		}
	}
	s.host.Progress().Update(progress.Delta{Removals: 1})
	s.host.Tracers().NamedPlanRemoved(name, s.target)
	return true
}

// Performer returns the performer bound to class, if any.
func (s *TargetScope) Performer(class *model.Class) (model.Performing, bool) {
	performer, ok := s.performers[class]
	return performer, ok
}

// Performers returns the scope performers in creation order.
func (s *TargetScope) Performers() []model.Performing {
	result := make([]model.Performing, 0, len(s.classes))
	for _, class := range s.classes {
		result = append(result, s.performers[class])
	}
	return result
}

// Bound returns the performers currently bound to name, in binding order.
func (s *TargetScope) Bound(name string) []model.Performing {
	classes := s.names[name]
	result := make([]model.Performing, 0, len(classes))
	for _, class := range classes {
		result = append(result, s.performers[class])
	}
	return result
}

// Names returns the number of bound names.
func (s *TargetScope) Names() int {
	return len(s.names)
}

// Reachable reports whether the scope still tracks work for its performers.
func (s *TargetScope) Reachable() bool {
	return !s.released && s.host.Reachable()
}

// Release drops all performers and bindings. Token generators handed out by
// the scope stop producing tokens.
func (s *TargetScope) Release() {
	s.released = true
	s.performers = map[*model.Class]model.Performing{}
	s.classes = nil
	s.names = map[string][]*model.Class{}
}

func (s *TargetScope) performer(class *model.Class) (model.Performing, bool) {
	if performer, ok := s.performers[class]; ok {
		return performer, false
	}
	performer := class.New(s.target)
	if performer == nil {
		panic(fmt.Sprintf("scope: class %q constructed a nil performer", class))
	}
	// register before handing out capabilities so reentrant plans of the
	// same class reach this instance
	s.performers[class] = performer
	s.classes = append(s.classes, class)
	s.host.Batch().RecordCreation(&model.Creation{Performer: performer, Class: class, Target: s.target})
	s.host.Progress().Update(progress.Delta{Performers: 1})
	s.host.Logger().WithFields(logrus.Fields{"class": class.Name, "target": fmt.Sprintf("%T", s.target)}).Debug("performer created")
	s.host.Tracers().PerformerCreated(performer, s.target)

	if continuous, ok := performer.(model.ContinuousPerforming); ok {
		continuous.SetTokenGenerator(token.NewGenerator(s.host.Pool(), performer, s.Reachable))
	}
	if composable, ok := performer.(model.ComposablePerforming); ok {
		composable.SetPlanEmitter(s.host.PlanEmitter(s.target))
	}
	return performer, true
}

func (s *TargetScope) bind(name string, class *model.Class) {
	for _, candidate := range s.names[name] {
		if candidate == class {
			return
		}
	}
	s.names[name] = append(s.names[name], class)
}

func resolve(plan model.Plan) *model.Class {
	if plan == nil {
		panic("scope: plan is nil")
	}
	class := plan.PerformerClass()
	if !class.Resolvable() {
		panic(fmt.Sprintf("scope: plan %T has no resolvable performer class", plan))
	}
	return class
}

// New creates a scope for target.
func New(target interface{}, host Host) *TargetScope {
	return &TargetScope{
		target:     target,
		host:       host,
		performers: map[*model.Class]model.Performing{},
		names:      map[string][]*model.Class{},
	}
}
