// SPDX-License-Identifier: MIT
// Package bytestr_test contains shared fixtures for bytestr tests.
//
// Purpose:
//   - Deterministic fixtures and small constructors so test bodies stay short.
//   - A failing allocator to drive ErrAllocation paths without exhausting memory.

package bytestr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strlab/bytestr"
)

// Common contents used across tests (avoid magic strings in test bodies).
const (
	TextEmpty    = ""
	TextShort    = "ab"
	TextSentence = "Testing this now"
	TextFilter   = "abacadae"
	TextFiltered = "bcde"
	TextNegative = "-1234567"
	TextLong     = "this content is well past the default capacity"
)

// Capacities used across tests.
const (
	CapDefault = bytestr.DefaultCapacity
	CapSmall   = 4
)

// errAllocatorDown is returned by failingAllocator.
var errAllocatorDown = errors.New("allocator down")

// newString allocates a String with opts and fails the test on error.
func newString(t testing.TB, opts ...bytestr.Option) *bytestr.String {
	t.Helper()
	s, err := bytestr.New(opts...)
	require.NoError(t, err)

	return s
}

// fromString allocates a String holding content.
func fromString(t testing.TB, content string, opts ...bytestr.Option) *bytestr.String {
	t.Helper()
	s := newString(t, opts...)
	require.NoError(t, s.SetString(content))

	return s
}

// mustLen returns s.Len() and fails the test on error.
func mustLen(t testing.TB, s *bytestr.String) int {
	t.Helper()
	n, err := s.Len()
	require.NoError(t, err)

	return n
}

// mustCap returns s.Cap() and fails the test on error.
func mustCap(t testing.TB, s *bytestr.String) int {
	t.Helper()
	n, err := s.Cap()
	require.NoError(t, err)

	return n
}

// switchAllocator hands out heap buffers until fail is set, then refuses.
// It counts refusals so tests can prove a failure path was actually taken.
type switchAllocator struct {
	fail    bool
	refused int
}

func (a *switchAllocator) Alloc(n int) ([]byte, error) {
	if a.fail {
		a.refused++
		return nil, errAllocatorDown
	}

	return make([]byte, n), nil
}
