// Package transaction defines the ordered log of plan operations executed by
// the runtime and the batch that accumulates what a top-level execution did.
package transaction

import "github.com/viant/motion/model"

// Log is an ordered sequence of plan operations. Operations are executed
// strictly in insertion order.
type Log struct {
	operations []*model.Operation
}

// AddPlan appends an AddPlan operation.
func (l *Log) AddPlan(plan model.Plan, target interface{}) *Log {
	l.operations = append(l.operations, &model.Operation{Kind: model.OperationAddPlan, Plan: plan, Target: target})
	return l
}

// AddPlans appends one AddPlan operation per plan, preserving order.
func (l *Log) AddPlans(plans []model.Plan, target interface{}) *Log {
	for _, plan := range plans {
		l.AddPlan(plan, target)
	}
	return l
}

// AddNamedPlan appends an AddNamedPlan operation.
func (l *Log) AddNamedPlan(plan model.NamedPlan, name string, target interface{}) *Log {
	l.operations = append(l.operations, &model.Operation{Kind: model.OperationAddNamedPlan, Plan: plan, Name: name, Target: target})
	return l
}

// RemovePlanNamed appends a RemovePlanNamed operation.
func (l *Log) RemovePlanNamed(name string, target interface{}) *Log {
	l.operations = append(l.operations, &model.Operation{Kind: model.OperationRemovePlanNamed, Name: name, Target: target})
	return l
}

// Operations returns the logged operations.
func (l *Log) Operations() []*model.Operation {
	if l == nil {
		return nil
	}
	return l.operations
}

// Len returns the number of operations.
func (l *Log) Len() int {
	if l == nil {
		return 0
	}
	return len(l.operations)
}

// New creates an empty log.
func New() *Log {
	return &Log{}
}
