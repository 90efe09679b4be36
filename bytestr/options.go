// SPDX-License-Identifier: MIT

// Package bytestr: functional configuration for String instances.
// This file defines:
//   - documented defaults (constants, single source of truth),
//   - Option and the unexported resolved config,
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions, which resolves options into a config.
//
// Notes:
//   - A config is immutable once resolved. Clones share their source's config;
//     they never share its buffer.
//   - WithMaxCapacity only constrains the default heap allocator, and only
//     for String buffers: the terminated copy from RawBytes may be one byte
//     longer. A custom allocator installed with WithAllocator enforces its
//     own limits.
package bytestr

// ---------- Defaults ----------

const (
	// DefaultCapacity is the capacity of a freshly allocated String.
	DefaultCapacity = 16

	// DefaultShrinkThreshold is the slack (capacity - length) tolerated before
	// resize gives memory back.
	DefaultShrinkThreshold = 16

	// DefaultMaxCapacity is the largest buffer the default allocator hands out.
	DefaultMaxCapacity = 1<<31 - 1
)

// ---------- Panic messages ----------

const (
	panicDefaultCapacityInvalid = "bytestr: WithDefaultCapacity: capacity must be >= 1"
	panicShrinkThresholdInvalid = "bytestr: WithShrinkThreshold: threshold must be >= 0"
	panicMaxCapacityInvalid     = "bytestr: WithMaxCapacity: limit must be >= 1"
	panicAllocatorNil           = "bytestr: WithAllocator: allocator must be non-nil"
)

// Option mutates the configuration of a String under construction.
// Later options override earlier ones.
type Option func(*config)

// config is the resolved configuration shared by a String and its clones.
type config struct {
	defaultCapacity int
	shrinkThreshold int
	maxCapacity     int
	alloc           Allocator // nil means heap allocator bounded by maxCapacity
}

// WithDefaultCapacity sets the capacity of fresh and emptied instances.
// Panics if n < 1.
func WithDefaultCapacity(n int) Option {
	if n < 1 {
		panic(panicDefaultCapacityInvalid)
	}

	return func(c *config) { c.defaultCapacity = n }
}

// WithShrinkThreshold sets the hysteresis slack. A threshold of 0 makes every
// resize exact. Panics if n < 0.
func WithShrinkThreshold(n int) Option {
	if n < 0 {
		panic(panicShrinkThresholdInvalid)
	}

	return func(c *config) { c.shrinkThreshold = n }
}

// WithMaxCapacity bounds the default allocator: requests above n fail with
// ErrAllocation. Panics if n < 1.
func WithMaxCapacity(n int) Option {
	if n < 1 {
		panic(panicMaxCapacityInvalid)
	}

	return func(c *config) { c.maxCapacity = n }
}

// WithAllocator replaces the default heap allocator.
// Panics if a is nil.
func WithAllocator(a Allocator) Option {
	if a == nil {
		panic(panicAllocatorNil)
	}

	return func(c *config) { c.alloc = a }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) *config {
	c := &config{
		defaultCapacity: DefaultCapacity,
		shrinkThreshold: DefaultShrinkThreshold,
		maxCapacity:     DefaultMaxCapacity,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.alloc == nil {
		c.alloc = heapAllocator{limit: c.maxCapacity}
	}

	return c
}
