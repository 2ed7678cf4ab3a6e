// Package metrics counts the work done by an analysis: closures computed,
// combinations examined and pruned during the key search, and keys found.
package metrics

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "fdcheck"

// Metrics holds the collectors of one registry.  A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry     *prometheus.Registry
	closures     prometheus.Counter
	combinations *prometheus.CounterVec
	keys         prometheus.Counter
	levels       prometheus.Histogram
	removed      *prometheus.CounterVec
}

// New creates the collectors and registers them with a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		closures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "closures_total",
			Help:      "Attribute closures computed during the key search.",
		}),
		combinations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "combinations_total",
			Help:      "Attribute combinations visited by the key search, by outcome.",
		}, []string{"outcome"}),
		keys: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidate_keys_total",
			Help:      "Candidate keys found.",
		}),
		levels: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_levels",
			Help:      "Number of combination sizes searched per key search.",
			Buckets:   prometheus.LinearBuckets(0, 2, 8),
		}),
		removed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cover_removed_total",
			Help:      "Dependencies or attributes removed while building a canonical cover, by stage.",
		}, []string{"stage"}),
	}
	m.registry.MustRegister(m.closures, m.combinations, m.keys, m.levels, m.removed)
	return m
}

// Registry exposes the registry, for gathering or serving.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) Closure() {
	if m == nil {
		return
	}
	m.closures.Inc()
}

// Combination records a visited combination.  Outcome is one of "key",
// "pruned" or "rejected".
func (m *Metrics) Combination(outcome string) {
	if m == nil {
		return
	}
	m.combinations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) KeyFound() {
	if m == nil {
		return
	}
	m.keys.Inc()
}

func (m *Metrics) Levels(n int) {
	if m == nil {
		return
	}
	m.levels.Observe(float64(n))
}

// Removed records n removals by a canonical cover stage.
func (m *Metrics) Removed(stage string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.removed.WithLabelValues(stage).Add(float64(n))
}

// WriteText writes one line per sample, sorted by name.
func (m *Metrics) WriteText(w io.Writer) error {
	if m == nil {
		return nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	var lines []string
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			lines = append(lines, formatSample(mf.GetName(), mf.GetType(), metric))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func formatSample(name string, typ dto.MetricType, metric *dto.Metric) string {
	var labels []string
	for _, lp := range metric.GetLabel() {
		labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
	}
	if len(labels) > 0 {
		name += "{" + strings.Join(labels, ",") + "}"
	}
	switch typ {
	case dto.MetricType_COUNTER:
		return fmt.Sprintf("%s %g", name, metric.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return fmt.Sprintf("%s %g", name, metric.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := metric.GetHistogram()
		return fmt.Sprintf("%s count=%d sum=%g", name, h.GetSampleCount(), h.GetSampleSum())
	default:
		return name
	}
}
