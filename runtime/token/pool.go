package token

import (
	"fmt"
	"sort"

	"github.com/viant/motion/internal/idgen"
	"github.com/viant/motion/model"
)

// Listener is notified about pool changes. ActivityChanged fires only when the
// pool crosses between empty and non-empty.
type Listener interface {
	TokenGenerated(token *Token, active int)
	TokenTerminated(token *Token, active int)
	ActivityChanged(active bool)
}

// Pool is the set of active tokens shared by all targets of one runtime.
// It is not safe for concurrent use.
type Pool struct {
	active   map[*Token]struct{}
	seq      uint64
	listener Listener
}

// Generate creates a new active token owned by the performer and inserts it
// into the pool.
func (p *Pool) Generate(owner model.Performing) *Token {
	p.seq++
	token := &Token{ID: idgen.New(), owner: owner, pool: p, seq: p.seq}
	p.active[token] = struct{}{}
	if p.listener != nil {
		p.listener.TokenGenerated(token, len(p.active))
		if len(p.active) == 1 {
			p.listener.ActivityChanged(true)
		}
	}
	return token
}

// Terminate removes an active token from the pool. Terminating a token that
// was already terminated, or that belongs to a different pool, panics.
func (p *Pool) Terminate(token *Token) {
	if token == nil {
		panic("token: terminate called with nil token")
	}
	if token.pool != p {
		panic(fmt.Sprintf("token: %s belongs to a different pool", token.ID))
	}
	if _, ok := p.active[token]; !ok {
		panic(fmt.Sprintf("token: %s was already terminated", token.ID))
	}
	delete(p.active, token)
	token.terminated = true
	if p.listener != nil {
		p.listener.TokenTerminated(token, len(p.active))
		if len(p.active) == 0 {
			p.listener.ActivityChanged(false)
		}
	}
}

// Len returns the number of active tokens.
func (p *Pool) Len() int {
	return len(p.active)
}

// IsActive reports whether at least one token is active.
func (p *Pool) IsActive() bool {
	return len(p.active) > 0
}

// Contains reports whether the token is an active member of the pool.
func (p *Pool) Contains(token *Token) bool {
	_, ok := p.active[token]
	return ok
}

// Tokens returns the active tokens in generation order.
func (p *Pool) Tokens() []*Token {
	result := make([]*Token, 0, len(p.active))
	for token := range p.active {
		result = append(result, token)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].seq < result[j].seq })
	return result
}

// OwnedBy returns the active tokens generated for the supplied performer.
func (p *Pool) OwnedBy(owner model.Performing) []*Token {
	var result []*Token
	for _, token := range p.Tokens() {
		if token.owner == owner {
			result = append(result, token)
		}
	}
	return result
}

// NewPool creates an empty pool. The listener may be nil.
func NewPool(listener Listener) *Pool {
	return &Pool{active: make(map[*Token]struct{}), listener: listener}
}
