package token

import "github.com/viant/motion/model"

// Token represents one unit of outstanding continuous work. It moves from
// active to terminated exactly once.
type Token struct {
	ID         string
	owner      model.Performing
	pool       *Pool
	seq        uint64
	terminated bool
}

// Terminate ends the unit of work. It panics if the token was already
// terminated.
func (t *Token) Terminate() {
	if t == nil {
		panic("token: terminate called with nil token")
	}
	t.pool.Terminate(t)
}

// Release terminates the token only if it is still active. It is meant to be
// deferred by code that owns a token for a bounded scope:
//
//	tok := generator.Generate()
//	if t, ok := tok.(*token.Token); ok {
//		defer t.Release()
//	}
func (t *Token) Release() {
	if t == nil || t.terminated {
		return
	}
	t.pool.Terminate(t)
}

// IsActive reports whether the token has not been terminated yet.
func (t *Token) IsActive() bool {
	return t != nil && !t.terminated
}

// Owner returns the performer the token was generated for.
func (t *Token) Owner() model.Performing {
	return t.owner
}
