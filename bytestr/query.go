package bytestr

import "unsafe"

// headerSize is the footprint of the three attribute fields of String.
var headerSize = int(unsafe.Sizeof(String{}.buf) + unsafe.Sizeof(String{}.length) + unsafe.Sizeof(String{}.capacity))

// Len returns the logical length.
func (s *String) Len() (int, error) {
	if err := s.valid(); err != nil {
		return 0, opError("Len", err)
	}

	return s.length, nil
}

// Cap returns the allocated capacity, which is never below Len.
func (s *String) Cap() (int, error) {
	if err := s.valid(); err != nil {
		return 0, opError("Cap", err)
	}

	return s.capacity, nil
}

// MemoryUsage reports the footprint of s: its buffer, length and capacity
// fields plus the allocated capacity (not the logical length).
func (s *String) MemoryUsage() (int, error) {
	if err := s.valid(); err != nil {
		return 0, opError("MemoryUsage", err)
	}

	return headerSize + s.capacity, nil
}

// String returns the content as a Go string, for fmt and debugging.
// It never fails: a nil receiver prints "<nil>", a released one "<released>".
func (s *String) String() string {
	switch {
	case s == nil:
		return "<nil>"
	case s.released:
		return "<released>"
	default:
		return string(s.content())
	}
}
