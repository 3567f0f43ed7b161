// Package tracer keeps the ordered set of tracers attached to a runtime and
// fans events out to them.
//
// Tracers are invoked synchronously, in registration order, on the call
// stack of the operation that produced the event. A panicking tracer is not
// recovered; the panic reaches the caller of the runtime operation and the
// remaining tracers are skipped.
//
// The package also provides a type registry so that configuration files can
// refer to custom tracers by their qualified type name. Registered tracers
// must be usable as zero values:
//
//	tracer.Register(&audit.Tracer{})
//	t, err := tracer.Lookup("audit.Tracer")
package tracer
