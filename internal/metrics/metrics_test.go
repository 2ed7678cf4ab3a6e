package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Run("Should count recorded events", func(t *testing.T) {
		m := New()
		m.Closure()
		m.Closure()
		m.Combination("key")
		m.Combination("pruned")
		m.Combination("pruned")
		m.KeyFound()
		m.Levels(3)
		m.Removed("redundant", 2)
		m.Removed("extraneous", 0)

		assert.Equal(t, 2.0, testutil.ToFloat64(m.closures))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.combinations.WithLabelValues("key")))
		assert.Equal(t, 2.0, testutil.ToFloat64(m.combinations.WithLabelValues("pruned")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.keys))
		assert.Equal(t, 2.0, testutil.ToFloat64(m.removed.WithLabelValues("redundant")))
		assert.Equal(t, 1, testutil.CollectAndCount(m.levels))
	})

	t.Run("Should ignore calls on a nil receiver", func(t *testing.T) {
		var m *Metrics
		m.Closure()
		m.Combination("key")
		m.KeyFound()
		m.Levels(1)
		m.Removed("redundant", 1)
		assert.Nil(t, m.Registry())
		assert.NoError(t, m.WriteText(&bytes.Buffer{}))
	})

	t.Run("Should write sorted text samples", func(t *testing.T) {
		m := New()
		m.Closure()
		m.Combination("rejected")
		m.Levels(2)

		var buf bytes.Buffer
		require.NoError(t, m.WriteText(&buf))
		out := buf.String()
		assert.Contains(t, out, "fdcheck_closures_total 1\n")
		assert.Contains(t, out, `fdcheck_combinations_total{outcome="rejected"} 1`)
		assert.Contains(t, out, "fdcheck_search_levels count=1 sum=2")
	})
}
