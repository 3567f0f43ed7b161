package model

// Tokenable represents one unit of outstanding continuous work.
type Tokenable interface {
	// Terminate ends the unit of work. Calling it twice is a programming
	// error and panics.
	Terminate()
}

// TokenGenerating creates tokens on behalf of a performer.
type TokenGenerating interface {
	// Generate returns a new active token, or nil when the runtime is no
	// longer able to track work. Callers must treat nil as "untracked" and
	// carry on.
	Generate() Tokenable
}
