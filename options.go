package rel

import (
	"github.com/JoseManuelVargas/ud-mcic-db-t4/internal/logger"
	"github.com/JoseManuelVargas/ud-mcic-db-t4/internal/metrics"
)

// DefaultConcurrency is the number of candidate key search workers used when
// none is given.
const DefaultConcurrency = 4

// Option configures an analysis.
type Option func(*options)

type options struct {
	concurrency int
	log         logger.Logger
	metrics     *metrics.Metrics
}

func newOptions(opts []Option) *options {
	o := &options{concurrency: DefaultConcurrency}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = logger.Discard()
	}
	return o
}

// WithConcurrency bounds the number of concurrent candidate key workers.
// Values below one fall back to DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = DefaultConcurrency
		}
		o.concurrency = n
	}
}

// WithLogger sets the logger the analysis reports progress to.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithMetrics records the work done by the analysis in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}
