package progress

import (
	"sync"
	"time"
)

// Delta represents an incremental counter change emitted by scopes and the
// token pool. Fields are signed so that counters can be corrected downwards.
type Delta struct {
	Plans            int
	NamedPlans       int
	Removals         int
	Performers       int
	TokensGenerated  int
	TokensTerminated int
	Transitions      int
}

// Progress keeps aggregated dispatch counters. It is safe for concurrent use.
type Progress struct {
	StartedAt time.Time

	// Counters, modified via Update().
	Plans            int
	NamedPlans       int
	Removals         int
	Performers       int
	TokensGenerated  int
	TokensTerminated int
	Transitions      int

	sync.Mutex
	onChange func(Progress)
}

// ActiveTokens returns the number of tokens generated but not yet terminated.
func (p *Progress) ActiveTokens() int {
	return p.TokensGenerated - p.TokensTerminated
}

// Update applies the supplied delta to the tracker. If an onChange callback
// has been registered it is invoked with a copy of the updated tracker
// outside the critical section.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}

	p.Lock()

	p.Plans += d.Plans
	p.NamedPlans += d.NamedPlans
	p.Removals += d.Removals
	p.Performers += d.Performers
	p.TokensGenerated += d.TokensGenerated
	p.TokensTerminated += d.TokensTerminated
	p.Transitions += d.Transitions

	// Copy while holding the lock to avoid seeing partially updated counters.
	snapshot := p.copy()
	cb := p.onChange

	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return p.copy()
}

// OnChange registers a callback that is invoked after every Update. Passing
// nil disables the callback. Only one callback can be active.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

func (p *Progress) copy() Progress {
	return Progress{
		StartedAt:        p.StartedAt,
		Plans:            p.Plans,
		NamedPlans:       p.NamedPlans,
		Removals:         p.Removals,
		Performers:       p.Performers,
		TokensGenerated:  p.TokensGenerated,
		TokensTerminated: p.TokensTerminated,
		Transitions:      p.Transitions,
	}
}

// New creates a tracker. The onChange callback may be nil.
func New(startedAt time.Time, onChange func(Progress)) *Progress {
	return &Progress{StartedAt: startedAt, onChange: onChange}
}
