// SPDX-License-Identifier: MIT
// Package: strlab/bytestr
//
// errors.go: sentinel errors for the bytestr package.
//
// Error policy:
//   - Three error classes are exposed as root sentinels: ErrAllocation,
//     ErrInvalidArgument and ErrFormat. Every error returned by this package
//     matches exactly one of them via errors.Is.
//   - Narrower sentinels (ErrNilString, ErrAliasing, ErrSyntax, ...) wrap their
//     class root, so callers may branch on either level.
//   - Operations attach their name with opError; sentinels are never
//     stringified with parameters at definition site.
//   - Nothing here panics on user input. Option constructors (WithX) panic on
//     nonsensical values, which is a programmer error.

package bytestr

import (
	"errors"
	"fmt"
)

// ErrAllocation indicates the allocator could not provide a buffer of the
// requested size. The failing call has no effect on the instance it was
// invoked on; other instances remain usable.
var ErrAllocation = errors.New("bytestr: allocation failed")

// ErrInvalidArgument is the root of the invalid-argument class: a nil or
// released handle, a nil byte slice or function, or forbidden aliasing.
var ErrInvalidArgument = errors.New("bytestr: invalid argument")

// ErrFormat is the root of the format class: content that cannot be
// interpreted as the requested type.
var ErrFormat = errors.New("bytestr: invalid format")

// Invalid-argument sentinels.
var (
	// ErrNilString indicates a nil *String was passed where a valid one is required.
	ErrNilString = fmt.Errorf("%w: nil string", ErrInvalidArgument)

	// ErrNilBytes indicates a nil byte slice was passed to SetBytes.
	// An empty, non-nil slice is accepted.
	ErrNilBytes = fmt.Errorf("%w: nil byte slice", ErrInvalidArgument)

	// ErrNilFunc indicates a nil comparator or predicate.
	ErrNilFunc = fmt.Errorf("%w: nil function", ErrInvalidArgument)

	// ErrNilWriter indicates a nil io.Writer was passed to WriteTo.
	ErrNilWriter = fmt.Errorf("%w: nil writer", ErrInvalidArgument)

	// ErrAliasing indicates the destination of Concat is one of its sources.
	ErrAliasing = fmt.Errorf("%w: destination aliases a source", ErrInvalidArgument)

	// ErrReleased indicates the instance was already released.
	ErrReleased = fmt.Errorf("%w: string already released", ErrInvalidArgument)
)

// Format sentinels, carried inside *NumError by Int.
var (
	// ErrEmpty indicates there is no content to parse.
	ErrEmpty = fmt.Errorf("%w: empty input", ErrFormat)

	// ErrSyntax indicates a byte other than a digit or a single leading '-'.
	ErrSyntax = fmt.Errorf("%w: invalid syntax", ErrFormat)

	// ErrRange indicates the value does not fit into int64.
	ErrRange = fmt.Errorf("%w: value out of range", ErrFormat)
)

// NumError records a failed integer conversion.
type NumError struct {
	Func  string // the failing operation ("Int")
	Input string // the content that was parsed
	Err   error  // ErrEmpty, ErrSyntax or ErrRange
}

func (e *NumError) Error() string {
	return "bytestr." + e.Func + ": parsing " + quote(e.Input) + ": " + e.Err.Error()
}

func (e *NumError) Unwrap() error { return e.Err }

func numError(fn string, input []byte, err error) *NumError {
	return &NumError{Func: fn, Input: string(input), Err: err}
}

// opError tags err with the failing operation name.
func opError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// quote wraps s in double quotes without escaping; content is raw bytes.
func quote(s string) string {
	return `"` + s + `"`
}
