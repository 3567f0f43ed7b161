// Package tracing integrates OpenTelemetry with the motion runtime. It
// installs a process wide tracer provider and exposes a runtime tracer that
// turns plan and performer lifecycle events into spans. Applications that do
// not require tracing never touch the global provider.
package tracing
