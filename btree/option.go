package btree

type options struct {
	logger Logger
}

func defaultOptions() options {
	return options{
		logger: DiscardLogger{},
	}
}

// Option configures a tree using the functional options pattern.
type Option func(*options)

// WithLogger sets the logger receiving structural events: root splits, root collapses and
// deletes of absent keys. A nil logger keeps the default, which discards everything.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
