package transaction

import (
	"github.com/viant/motion/internal/clock"
	"github.com/viant/motion/model"
)

// Batch accumulates the operations applied and performers created while a
// top-level log executes, including logs executed reentrantly. Begin and
// End/Abort calls must be balanced.
type Batch struct {
	depth   int
	added   []*model.Operation
	removed []*model.Operation
	created []*model.Creation
}

// Begin enters a (possibly nested) log execution.
func (b *Batch) Begin() {
	b.depth++
}

// Depth returns the current nesting level; zero means no execution is in
// progress.
func (b *Batch) Depth() int {
	return b.depth
}

// Record appends an applied operation.
func (b *Batch) Record(operation *model.Operation) {
	if operation.IsRemoval() {
		b.removed = append(b.removed, operation)
		return
	}
	b.added = append(b.added, operation)
}

// RecordCreation appends a newly created performer.
func (b *Batch) RecordCreation(creation *model.Creation) {
	b.created = append(b.created, creation)
}

// End leaves a log execution. When the outermost execution ends it returns
// the accumulated commit and creations, and top is true.
func (b *Batch) End() (commit *model.Commit, created []*model.Creation, top bool) {
	b.depth--
	if b.depth > 0 {
		return nil, nil, false
	}
	commit = &model.Commit{Added: b.added, Removed: b.removed, CommittedAt: clock.Now()}
	created = b.created
	b.reset()
	return commit, created, true
}

// Abort leaves a log execution that did not complete. Pending records are
// discarded once the outermost execution unwinds.
func (b *Batch) Abort() {
	if b.depth > 0 {
		b.depth--
	}
	if b.depth == 0 {
		b.reset()
	}
}

func (b *Batch) reset() {
	b.depth = 0
	b.added = nil
	b.removed = nil
	b.created = nil
}
