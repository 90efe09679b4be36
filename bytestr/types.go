// SPDX-License-Identifier: MIT

// Package bytestr defines String, its constructor and its lifecycle.
//
// This file declares String, Ordering, the comparator function types,
// and New/Release/Clone.
package bytestr

// String is a growable byte string that manages its own backing buffer.
//
// The buffer is owned exclusively: no two instances ever share one, and every
// mutating operation either completes or leaves the instance as it was.
// capacity mirrors len(buf); bytes past length are never read.
//
// A nil *String stands for the null handle. Methods on it report
// ErrNilString, except Release (no-op) and RawBytes (nil, nil).
//
// String is not safe for concurrent use.
type String struct {
	buf      []byte // owned storage; len(buf) == capacity
	length   int    // logical length
	capacity int    // allocated size of buf

	cfg      *config
	released bool
}

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	// OrderLess means the left operand sorts first.
	OrderLess Ordering = -1
	// OrderEqual means neither operand sorts first.
	OrderEqual Ordering = 0
	// OrderGreater means the right operand sorts first.
	OrderGreater Ordering = 1
)

// String returns "Less", "Equal" or "Greater".
func (o Ordering) String() string {
	switch {
	case o < 0:
		return "Less"
	case o > 0:
		return "Greater"
	default:
		return "Equal"
	}
}

// ByteCompareFunc orders two bytes: negative if a sorts before b, zero if
// they are equivalent, positive otherwise.
type ByteCompareFunc func(a, b byte) int

// ByteEqualFunc reports whether two bytes are equivalent.
type ByteEqualFunc func(a, b byte) bool

// ByteOrder is the default ByteCompareFunc: plain byte value ordering.
func ByteOrder(a, b byte) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ByteEqual is the default ByteEqualFunc: identical byte values.
func ByteEqual(a, b byte) bool { return a == b }

// New allocates an empty String with the default capacity.
//
// Errors:
//   - ErrAllocation if the allocator cannot provide the initial buffer.
//
// Complexity: O(DefaultCapacity).
func New(opts ...Option) (*String, error) {
	s, err := newWithConfig(gatherOptions(opts...))
	if err != nil {
		return nil, opError("New", err)
	}

	return s, nil
}

func newWithConfig(cfg *config) (*String, error) {
	return newSized(cfg, cfg.defaultCapacity)
}

// newSized builds an empty instance whose buffer holds exactly n bytes.
func newSized(cfg *config, n int) (*String, error) {
	buf, err := allocate(cfg.alloc, n)
	if err != nil {
		return nil, err
	}

	return &String{buf: buf, capacity: n, cfg: cfg}, nil
}

// Release drops the buffer and marks s unusable. Calling it on a nil or an
// already released String does nothing.
func (s *String) Release() {
	if s == nil || s.released {
		return
	}
	s.buf = nil
	s.length = 0
	s.capacity = 0
	s.released = true
}

// Clone returns an independent String with the same content and options.
// A non-empty source yields capacity exactly Len(); an empty source yields a
// fresh instance with the default capacity.
//
// Errors: ErrNilString, ErrReleased, ErrAllocation.
func (s *String) Clone() (*String, error) {
	if err := s.valid(); err != nil {
		return nil, opError("Clone", err)
	}

	var (
		c   *String
		err error
	)
	if s.length == 0 {
		c, err = newWithConfig(s.cfg)
	} else {
		c, err = newSized(s.cfg, s.length)
	}
	if err != nil {
		return nil, opError("Clone", err)
	}
	c.length = copy(c.buf, s.buf[:s.length])

	return c, nil
}

// valid reports why s cannot be used, or nil.
func (s *String) valid() error {
	if s == nil {
		return ErrNilString
	}
	if s.released {
		return ErrReleased
	}

	return nil
}

// content is the logical view of the buffer. Callers must not retain it.
func (s *String) content() []byte {
	return s.buf[:s.length]
}
