package token

import "github.com/viant/motion/model"

// Generator creates tokens for a single performer. It stops producing tokens
// once its reachability check fails, e.g. after the owning runtime closed.
type Generator struct {
	pool      *Pool
	owner     model.Performing
	reachable func() bool
}

// Generate returns a new active token, or nil when the owner is no longer
// reachable.
func (g *Generator) Generate() model.Tokenable {
	if g == nil || g.pool == nil {
		return nil
	}
	if g.reachable != nil && !g.reachable() {
		return nil
	}
	return g.pool.Generate(g.owner)
}

// NewGenerator returns a generator bound to the pool and owner. A nil
// reachable func means the owner is always reachable.
func NewGenerator(pool *Pool, owner model.Performing, reachable func() bool) *Generator {
	return &Generator{pool: pool, owner: owner, reachable: reachable}
}
