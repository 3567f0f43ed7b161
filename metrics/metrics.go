// Package metrics exposes runtime activity as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/motion/model"
)

// Label values for plan kinds and activity states.
const (
	kindPlain = "plain"
	kindNamed = "named"

	stateActive = "active"
	stateIdle   = "idle"
)

// Collector implements the runtime tracer hooks and token observation
// callbacks, translating them into Prometheus metrics.
type Collector struct {
	plansAdded        *prometheus.CounterVec
	plansRemoved      prometheus.Counter
	performersCreated *prometheus.CounterVec
	commits           prometheus.Counter
	activeTokens      prometheus.Gauge
	transitions       *prometheus.CounterVec
}

// OnPlanAdded counts a plain plan.
func (c *Collector) OnPlanAdded(plan model.Plan, target interface{}) {
	c.plansAdded.WithLabelValues(plan.PerformerClass().String(), kindPlain).Inc()
}

// OnNamedPlanAdded counts a named plan.
func (c *Collector) OnNamedPlanAdded(plan model.NamedPlan, name string, target interface{}) {
	c.plansAdded.WithLabelValues(plan.PerformerClass().String(), kindNamed).Inc()
}

// OnNamedPlanRemoved counts a removal.
func (c *Collector) OnNamedPlanRemoved(name string, target interface{}) {
	c.plansRemoved.Inc()
}

// OnPlansCommitted counts a top-level commit.
func (c *Collector) OnPlansCommitted(commit *model.Commit) {
	c.commits.Inc()
}

// OnPerformersCreated counts created performers by class.
func (c *Collector) OnPerformersCreated(created []*model.Creation) {
	for _, creation := range created {
		c.performersCreated.WithLabelValues(creation.Class.String()).Inc()
	}
}

// ObserveTokens records the number of active tokens.
func (c *Collector) ObserveTokens(active int) {
	c.activeTokens.Set(float64(active))
}

// ObserveActivity counts an activity transition.
func (c *Collector) ObserveActivity(active bool) {
	state := stateIdle
	if active {
		state = stateActive
	}
	c.transitions.WithLabelValues(state).Inc()
}

// Collectors returns the underlying Prometheus collectors.
func (c *Collector) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		c.plansAdded,
		c.plansRemoved,
		c.performersCreated,
		c.commits,
		c.activeTokens,
		c.transitions,
	}
}

// Register registers all collectors with reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, collector := range c.Collectors() {
		if err := reg.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

// NewCollector creates a collector whose metric names are prefixed with
// namespace.
func NewCollector(namespace string) *Collector {
	ret := &Collector{
		plansAdded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "plans_added_total",
				Help:      "Total number of plans delivered to performers.",
			},
			[]string{"class", "kind"},
		),
		plansRemoved: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "plans_removed_total",
				Help:      "Total number of named plan removals.",
			},
		),
		performersCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "performers_created_total",
				Help:      "Total number of performers created.",
			},
			[]string{"class"},
		),
		commits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commits_total",
				Help:      "Total number of top-level plan submissions that changed plans.",
			},
		),
		activeTokens: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_tokens",
				Help:      "Number of currently active continuous performance tokens.",
			},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "activity_transitions_total",
				Help:      "Total number of runtime activity state transitions.",
			},
			[]string{"state"},
		),
	}
	// Pre-initialize label combinations so they are exported with value 0.
	ret.transitions.WithLabelValues(stateActive)
	ret.transitions.WithLabelValues(stateIdle)
	return ret
}
