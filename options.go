package confusion

// Option configures label classification.
type Option[T comparable] func(*config[T])

type config[T comparable] struct {
	positive    T
	hasPositive bool
}

// WithPositive sets the label value treated as positive, overriding the
// type-dependent default positivity rule.
func WithPositive[T comparable](v T) Option[T] {
	return func(c *config[T]) {
		c.positive = v
		c.hasPositive = true
	}
}
