package arena

import "errors"

// Handle is a stable index identifying a node within an arena treap. A
// handle stays valid from the Append that produced it until the caller
// passes it to Release; decoupling alone does not invalidate it.
type Handle uint32

// None is the absent handle, used where a pointer-based tree would hold nil.
const None = Handle(^uint32(0))

// Errors
var (
	// ErrKeyNotFound is returned when a key is not present in the treap.
	ErrKeyNotFound = errors.New("key not found")
	// ErrNotInTree is returned when an operation is given a handle that is
	// out of range or no longer names a live node.
	ErrNotInTree = errors.New("handle does not name a live node")
	// ErrStillLinked is returned by Release for a node that has not been
	// decoupled first.
	ErrStillLinked = errors.New("node is still linked into the tree")
)

// Config holds configuration for an arena treap.
type Config struct {
	// initialCapacity is the node count the backing slice is sized for
	// up front.
	initialCapacity uint
}

// NewConfig creates a Config with default values.
func NewConfig(opts ...Option) Config {
	c := Config{
		initialCapacity: 16,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Option adjusts a Config.
type Option func(*Config)

// WithInitialCapacity sets how many nodes the arena pre-allocates.
func WithInitialCapacity(n uint) Option {
	return func(c *Config) { c.initialCapacity = n }
}
