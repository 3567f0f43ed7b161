package model

import "time"

// OperationKind enumerates transaction log operations.
type OperationKind string

const (
	OperationAddPlan         OperationKind = "addPlan"
	OperationAddNamedPlan    OperationKind = "addNamedPlan"
	OperationRemovePlanNamed OperationKind = "removePlanNamed"
)

// Operation is a single entry of a transaction log.
type Operation struct {
	Kind   OperationKind
	Plan   Plan
	Name   string
	Target interface{}
}

// IsRemoval reports whether the operation removes plans.
func (o *Operation) IsRemoval() bool {
	return o.Kind == OperationRemovePlanNamed
}

// Commit summarises the plan operations applied by one top-level submission,
// including operations emitted reentrantly by performers.
type Commit struct {
	Added       []*Operation
	Removed     []*Operation
	CommittedAt time.Time
}

// IsEmpty reports whether the commit carries no operations.
func (c *Commit) IsEmpty() bool {
	return c == nil || len(c.Added)+len(c.Removed) == 0
}

// Creation records a performer instantiated for a target.
type Creation struct {
	Performer Performing
	Class     *Class
	Target    interface{}
}
