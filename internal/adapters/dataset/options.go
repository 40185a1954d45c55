package dataset

// options holds configurable loader behavior.
type options struct {
	idColumn      string
	missingTokens []string
}

// Option applies a configuration option to the Loader.
type Option func(*options)

// WithIDColumn names the participant-id column of the wide table.
func WithIDColumn(name string) Option {
	return func(o *options) {
		if name != "" {
			o.idColumn = name
		}
	}
}

// WithMissingTokens sets the cell values treated as missing observations.
func WithMissingTokens(tokens []string) Option {
	return func(o *options) {
		if tokens != nil {
			o.missingTokens = tokens
		}
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		idColumn:      "id",
		missingTokens: []string{"", "NA"},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
