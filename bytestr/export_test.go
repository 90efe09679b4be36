// SPDX-License-Identifier: MIT

package bytestr

// Test bridge: exposes the private capacity policy and resolved options to
// bytestr_test without widening the production API.

// Resize_TestOnly runs the private capacity policy for a requested size n.
func Resize_TestOnly(s *String, n int) error { return s.resize(n) }

// HeaderSize_TestOnly is the fixed part of MemoryUsage.
var HeaderSize_TestOnly = headerSize

// FormatInt_TestOnly exposes the digit writer used by SetInt.
func FormatInt_TestOnly(n int64) string {
	var b [maxInt64Digits]byte
	return string(b[:formatInt(b[:], n)])
}

// OptionsSnapshot is a read-only view of a resolved config.
type OptionsSnapshot struct {
	DefaultCapacity int
	ShrinkThreshold int
	MaxCapacity     int
	CustomAllocator bool
}

// GatherOptionsSnapshot_TestOnly resolves opts the way New does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	c := gatherOptions(opts...)
	_, heap := c.alloc.(heapAllocator)

	return OptionsSnapshot{
		DefaultCapacity: c.defaultCapacity,
		ShrinkThreshold: c.shrinkThreshold,
		MaxCapacity:     c.maxCapacity,
		CustomAllocator: !heap,
	}
}

// Panic messages, to avoid magic strings in tests.
const (
	PanicDefaultCapacityInvalid_TestOnly = panicDefaultCapacityInvalid
	PanicShrinkThresholdInvalid_TestOnly = panicShrinkThresholdInvalid
	PanicMaxCapacityInvalid_TestOnly     = panicMaxCapacityInvalid
	PanicAllocatorNil_TestOnly           = panicAllocatorNil
)
