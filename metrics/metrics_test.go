package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/sapling"
)

func TestCollectorObservesPasses(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	tree := sapling.NewSceneTree(sapling.WithObserver(c))

	root := sapling.NewNode("root")
	require.NoError(t, tree.Attach(root, nil))
	require.NoError(t, tree.Attach(sapling.NewNode("a"), root))
	require.NoError(t, tree.Attach(sapling.NewNode("b"), root))

	tree.Step(1.0 / 60)
	tree.Step(1.0 / 60)
	tree.Dispatch("ping")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.passes.WithLabelValues("step")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.passes.WithLabelValues("dispatch")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.visited.WithLabelValues("step")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.passDuration))
}

func TestCollectorRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg)
	assert.Panics(t, func() { NewCollector(reg) })
}
