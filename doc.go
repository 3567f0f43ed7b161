// Package motion provides an in-process plan/performer dispatch runtime.
//
// Callers describe desired behavior for a target as plans. The runtime
// resolves each plan to a performer selected by the plan's performer class,
// creating at most one performer per target and class, and delivers the plan
// to it. Performers may request continuous performance tokens, which drive the
// runtime's Idle/Active activity state, and may emit further plans while they
// are being dispatched.
//
// Quick start:
//
//	runtime := motion.New(motion.WithTracers(logging.NewTracer(logger)))
//	runtime.AddPlan(fadeIn, view)
//	runtime.AddNamedPlan(bounce, "bounce", view)
//	runtime.RemovePlanNamed("bounce", view)
//
// The runtime is not safe for concurrent use; callers must serialize access.
package motion
