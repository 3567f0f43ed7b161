package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/motion/model"
)

var fadeClass = model.NewClass("fade", func(interface{}) model.Performing { return struct{}{} })

type fadePlan struct{ model.Named }

func (fadePlan) PerformerClass() *model.Class { return fadeClass }

func TestCollector(t *testing.T) {
	collector := NewCollector("motion_test")
	registry := prometheus.NewRegistry()
	require.NoError(t, collector.Register(registry))
	assert.Error(t, collector.Register(registry), "double registration is rejected")

	collector.OnPlanAdded(fadePlan{}, "v1")
	collector.OnPlanAdded(fadePlan{}, "v1")
	collector.OnNamedPlanAdded(fadePlan{}, "bounce", "v1")
	collector.OnNamedPlanRemoved("bounce", "v1")
	collector.OnPerformersCreated([]*model.Creation{{Class: fadeClass}})
	collector.OnPlansCommitted(&model.Commit{})
	collector.ObserveTokens(2)
	collector.ObserveActivity(true)

	assert.Equal(t, float64(2), testutil.ToFloat64(collector.plansAdded.WithLabelValues("fade", kindPlain)))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.plansAdded.WithLabelValues("fade", kindNamed)))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.plansRemoved))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.performersCreated.WithLabelValues("fade")))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.commits))
	assert.Equal(t, float64(2), testutil.ToFloat64(collector.activeTokens))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.transitions.WithLabelValues(stateActive)))
	assert.Equal(t, float64(0), testutil.ToFloat64(collector.transitions.WithLabelValues(stateIdle)))

	count, err := testutil.GatherAndCount(registry)
	require.NoError(t, err)
	assert.Equal(t, 8, count)
}
