// Package logging builds the logrus logger used by the runtime and provides
// a tracer that writes every runtime event to it.
package logging
