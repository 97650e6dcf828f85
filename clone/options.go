package clone

// Option configures a [Cloner].
type Option func(*config)

type config struct {
	strict   bool
	maxDepth int
	signals  bool
}

// WithStrict makes Opaque values an error instead of copying them by
// identity. Without it, funcs, channels and other opaque handles are shared
// between the source and the clone.
func WithStrict() Option {
	return func(c *config) { c.strict = true }
}

// WithMaxDepth limits container nesting. The root container is depth 1.
// A limit of zero or less means unlimited.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// WithSignals emits clone.start / clone.complete events through capitan
// from [Cloner.CloneContext].
func WithSignals() Option {
	return func(c *config) { c.signals = true }
}
