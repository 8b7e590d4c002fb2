package forwardlist

// options defines all configuration options for a list.
type options struct {
	limit int // Maximum number of live nodes, 0 means unbounded
}

// Option is a function that configures the list options.
type Option func(*options)

// WithLimit caps the number of nodes the list may hold. Insertions that
// would exceed the cap fail with ErrNoMemory. Zero disables the cap.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		limit: 0,
	}
}
