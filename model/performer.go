package model

// Performing is any value produced by a Class constructor. All further
// behavior is discovered through the optional capability interfaces below.
type Performing interface{}

// PlanPerforming performers accept plans incrementally.
type PlanPerforming interface {
	// AddPlan provides the performer with a plan. The performer may keep the
	// plan or only extract what it needs from it.
	AddPlan(plan Plan)
}

// NamedPlanPerforming performers accept named plans and can remove them.
type NamedPlanPerforming interface {
	AddNamedPlan(plan NamedPlan, name string)
	RemovePlanNamed(name string)
}

// ContinuousPerforming performers report outstanding work with tokens. The
// generator is supplied once, before the first plan is delivered.
type ContinuousPerforming interface {
	SetTokenGenerator(generator TokenGenerating)
}

// ComposablePerforming performers may submit new plans to their own target
// while they are being constructed or fed plans.
type ComposablePerforming interface {
	SetPlanEmitter(emitter PlanEmitting)
}

// PlanEmitting submits a plan to the target the emitter is bound to. The plan
// is fully dispatched before Emit returns.
type PlanEmitting interface {
	Emit(plan Plan)
}
