package dispatch

import "go.uber.org/zap"

type options struct {
	logger *zap.Logger
	name   string
}

// Option configures a builder.
type Option func(*options)

// WithLogger sets the logger a builder reports its resolution to. A nil
// logger silences the builder.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithName labels the builder in logs and reports.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func newOptions(opts []Option) options {
	o := options{logger: Logger()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
