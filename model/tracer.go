package model

// A tracer is any value implementing one or more of the hook interfaces
// below. Hooks are invoked synchronously, in registration order.

// PlanAddedTracer observes plans after they were delivered.
type PlanAddedTracer interface {
	OnPlanAdded(plan Plan, target interface{})
}

// NamedPlanAddedTracer observes named plans after they were delivered. Tracers
// that only implement PlanAddedTracer receive named plans through OnPlanAdded.
type NamedPlanAddedTracer interface {
	OnNamedPlanAdded(plan NamedPlan, name string, target interface{})
}

// NamedPlanRemovedTracer observes removal of a bound name.
type NamedPlanRemovedTracer interface {
	OnNamedPlanRemoved(name string, target interface{})
}

// PerformerCreatedTracer observes performer construction.
type PerformerCreatedTracer interface {
	OnPerformerCreated(performer Performing, target interface{})
}

// PlansCommittedTracer receives one batched event per top-level submission.
type PlansCommittedTracer interface {
	OnPlansCommitted(commit *Commit)
}

// PerformersCreatedTracer receives the performers created by a top-level
// submission, in creation order.
type PerformersCreatedTracer interface {
	OnPerformersCreated(created []*Creation)
}
