package bytestr

import (
	"errors"
	"math"
)

// Allocator provides backing buffers for String instances.
//
// Alloc returns a zeroed slice with len == n, or an error. Errors are wrapped
// by the caller so that errors.Is(err, ErrAllocation) holds whatever the
// allocator returned.
type Allocator interface {
	Alloc(n int) ([]byte, error)
}

// AllocatorFunc adapts an ordinary function to the Allocator interface.
type AllocatorFunc func(n int) ([]byte, error)

// Alloc calls f(n).
func (f AllocatorFunc) Alloc(n int) ([]byte, error) { return f(n) }

// heapAllocator is the default allocator: make() bounded by limit.
// The Go runtime aborts the process on genuine exhaustion, so limit is the
// only recoverable failure this allocator can report.
type heapAllocator struct {
	limit int
}

func (h heapAllocator) Alloc(n int) ([]byte, error) {
	if n < 0 || n > h.limit {
		return nil, ErrAllocation
	}

	return make([]byte, n), nil
}

// copyAllocator returns the allocator used for caller-owned copies such as
// the terminated output of RawBytes. The default heap allocator bounds String
// buffers only, so a copy of a String filled to the ceiling gets one byte of
// headroom for the terminator. Custom allocators see every request unchanged.
func copyAllocator(a Allocator) Allocator {
	if h, ok := a.(heapAllocator); ok && h.limit < math.MaxInt {
		return heapAllocator{limit: h.limit + 1}
	}

	return a
}

// allocate asks a for n bytes and normalises the outcome: any failure, or a
// slice of the wrong size, is reported as ErrAllocation.
func allocate(a Allocator, n int) ([]byte, error) {
	buf, err := a.Alloc(n)
	if err != nil {
		if errors.Is(err, ErrAllocation) {
			return nil, err
		}
		return nil, &allocError{cause: err}
	}
	if len(buf) != n {
		return nil, ErrAllocation
	}

	return buf, nil
}

// allocError keeps an allocator's own error visible while matching ErrAllocation.
type allocError struct {
	cause error
}

func (e *allocError) Error() string { return ErrAllocation.Error() + ": " + e.cause.Error() }

func (e *allocError) Unwrap() []error { return []error{ErrAllocation, e.cause} }
