package report

// options holds configurable renderer behavior.
type options struct {
	format Format
}

// Option applies a configuration option to the Renderer.
type Option func(*options)

// WithFormat selects the output format.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

func newOptions(opts ...Option) *options {
	o := &options{format: FormatTable}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
