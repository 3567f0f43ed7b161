// Package model contains the contracts exchanged between the motion runtime
// and the plans and performers it mediates.
//
// A plan describes desired behavior for a target and names the performer
// class able to carry it out. A performer is constructed by the runtime, once
// per (target, class) pair, and may opt into additional capabilities simply by
// implementing the corresponding interface:
//
//   - PlanPerforming       - incremental plan intake
//   - NamedPlanPerforming  - named plan intake and removal
//   - ContinuousPerforming - receives a token generator to report ongoing work
//   - ComposablePerforming - receives a plan emitter to submit new plans
//
// Tracer hooks are likewise optional, one interface per event.
package model
