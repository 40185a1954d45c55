package metrics

import "github.com/okian/metacog/internal/domain/stats"

// options holds configurable behavior for the correlation-based metrics.
type options struct {
	method stats.Method
}

// Option applies a configuration option.
type Option func(*options)

// WithMethod selects the correlation statistic for RankDiscrimination.
func WithMethod(m stats.Method) Option {
	return func(o *options) {
		o.method = m
	}
}

func newOptions(opts ...Option) *options {
	o := &options{method: stats.Spearman}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
