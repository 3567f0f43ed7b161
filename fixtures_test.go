package motion

import (
	"fmt"

	"github.com/viant/motion/logging"
	"github.com/viant/motion/model"
)

type view struct{ name string }

func (v *view) String() string { return v.name }

var (
	fadeClass = model.NewClass("fade", func(target interface{}) model.Performing {
		return &fadePerformer{target: target}
	})
	glowClass = model.NewClass("glow", func(target interface{}) model.Performing {
		return &glowPerformer{}
	})
	composerClass = model.NewClass("composer", func(target interface{}) model.Performing {
		return &composerPerformer{}
	})
	continuousClass = model.NewClass("continuous", func(target interface{}) model.Performing {
		return &continuousPerformer{}
	})
	staticClass = model.NewClass("static", func(target interface{}) model.Performing {
		return &staticPerformer{}
	})
)

type fadePlan struct {
	model.Named
	id string
}

func (p *fadePlan) PerformerClass() *model.Class { return fadeClass }
func (p *fadePlan) String() string { return p.id }

type glowPlan struct{ id string }

func (p *glowPlan) PerformerClass() *model.Class { return glowClass }
func (p *glowPlan) String() string { return p.id }

// composerPlan asks its performer to emit emits once the emitter is supplied.
type composerPlan struct {
	id    string
	emits model.Plan
}

func (p *composerPlan) PerformerClass() *model.Class { return composerClass }
func (p *composerPlan) String() string { return p.id }

type continuousPlan struct{ id string }

func (p *continuousPlan) PerformerClass() *model.Class { return continuousClass }
func (p *continuousPlan) String() string { return p.id }

type staticPlan struct{ id string }

func (p *staticPlan) PerformerClass() *model.Class { return staticClass }
func (p *staticPlan) String() string { return p.id }

type orphanPlan struct{}

func (orphanPlan) PerformerClass() *model.Class { return nil }

type fadePerformer struct {
	target  interface{}
	plans   []model.Plan
	named   []string
	removed []string
}

func (p *fadePerformer) AddPlan(plan model.Plan) {
	p.plans = append(p.plans, plan)
}

func (p *fadePerformer) AddNamedPlan(plan model.NamedPlan, name string) {
	p.plans = append(p.plans, plan)
	p.named = append(p.named, name)
}

func (p *fadePerformer) RemovePlanNamed(name string) {
	p.removed = append(p.removed, name)
}

type glowPerformer struct {
	plans []model.Plan
}

func (p *glowPerformer) AddPlan(plan model.Plan) {
	p.plans = append(p.plans, plan)
}

type composerPerformer struct {
	emitter model.PlanEmitting
	plans   []model.Plan
}

func (p *composerPerformer) SetPlanEmitter(emitter model.PlanEmitting) {
	p.emitter = emitter
}

func (p *composerPerformer) AddPlan(plan model.Plan) {
	p.plans = append(p.plans, plan)
	if composer, ok := plan.(*composerPlan); ok && composer.emits != nil {
		p.emitter.Emit(composer.emits)
	}
}

type continuousPerformer struct {
	generator model.TokenGenerating
	plans     []model.Plan
}

func (p *continuousPerformer) SetTokenGenerator(generator model.TokenGenerating) {
	p.generator = generator
}

func (p *continuousPerformer) AddPlan(plan model.Plan) {
	p.plans = append(p.plans, plan)
}

type staticPerformer struct{}

// recorder is a tracer implementing every hook.
type recorder struct {
	events  []string
	commits []*model.Commit
	created [][]*model.Creation
}

func (r *recorder) OnPlanAdded(plan model.Plan, target interface{}) {
	r.events = append(r.events, fmt.Sprintf("planAdded %v %v", plan, target))
}

func (r *recorder) OnNamedPlanAdded(plan model.NamedPlan, name string, target interface{}) {
	r.events = append(r.events, fmt.Sprintf("namedPlanAdded %v %s %v", plan, name, target))
}

func (r *recorder) OnNamedPlanRemoved(name string, target interface{}) {
	r.events = append(r.events, fmt.Sprintf("namedPlanRemoved %s %v", name, target))
}

func (r *recorder) OnPerformerCreated(performer model.Performing, target interface{}) {
	r.events = append(r.events, fmt.Sprintf("performerCreated %T %v", performer, target))
}

func (r *recorder) OnPlansCommitted(commit *model.Commit) {
	r.commits = append(r.commits, commit)
}

func (r *recorder) OnPerformersCreated(created []*model.Creation) {
	r.created = append(r.created, created)
}

type delegateRecorder struct {
	states []ActivityState
	depths []int
}

func (d *delegateRecorder) ActivityStateDidChange(runtime *Runtime) {
	d.states = append(d.states, runtime.ActivityState())
	d.depths = append(d.depths, runtime.batch.Depth())
}

func newTestRuntime(options ...Option) *Runtime {
	return New(append([]Option{WithLogger(logging.Discard())}, options...)...)
}

func performerOf[T model.Performing](runtime *Runtime, target interface{}, class *model.Class) T {
	var zero T
	targetScope, ok := runtime.scopes.Lookup(target)
	if !ok {
		return zero
	}
	performer, ok := targetScope.Performer(class)
	if !ok {
		return zero
	}
	return performer.(T)
}
