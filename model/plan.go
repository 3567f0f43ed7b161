package model

// Plan describes desired behavior for a target. Plans are treated as
// immutable values; the runtime hands them to performers and keeps no
// reference once dispatch completes.
type Plan interface {
	// PerformerClass returns the class of performer able to execute the plan.
	PerformerClass() *Class
}

// NamedPlan is a plan that can be added under a name and later removed by
// that name.
type NamedPlan interface {
	Plan
	NamedPlan()
}

// Named can be embedded in a plan struct to satisfy the NamedPlan marker.
type Named struct{}

// NamedPlan marks the embedding type as a NamedPlan.
func (Named) NamedPlan() {}

// Constructor creates a performer bound to the supplied target.
type Constructor func(target interface{}) Performing

// Class identifies a performer type. Identity is by pointer: two plans
// select the same performer only when they return the same *Class.
type Class struct {
	Name string
	New  Constructor
}

// NewClass returns a performer class with the supplied name and constructor.
func NewClass(name string, constructor Constructor) *Class {
	return &Class{Name: name, New: constructor}
}

// Resolvable reports whether the class can construct performers.
func (c *Class) Resolvable() bool {
	return c != nil && c.New != nil
}

// String returns the class name.
func (c *Class) String() string {
	if c == nil {
		return "<nil>"
	}
	return c.Name
}
