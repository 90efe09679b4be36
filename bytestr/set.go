// SPDX-License-Identifier: MIT

package bytestr

// SetFrom replaces the content of s with a copy of src's content.
//
// Setting from an empty source empties s and requests the default capacity
// through the capacity policy, so a moderately oversized buffer is kept.
// s == src is accepted and changes nothing.
//
// Errors: ErrNilString, ErrReleased, ErrAllocation. On error s is unchanged.
func (s *String) SetFrom(src *String) error {
	if err := s.valid(); err != nil {
		return opError("SetFrom", err)
	}
	if err := src.valid(); err != nil {
		return opError("SetFrom", err)
	}
	if s == src {
		return nil
	}

	return s.assign("SetFrom", src.length, func(dst []byte) { copy(dst, src.content()) })
}

// SetBytes replaces the content of s with a copy of p. Bytes are copied
// verbatim; a zero byte is ordinary content.
//
// A nil p is rejected with ErrNilBytes. An empty, non-nil p empties s, with
// the same capacity treatment as SetFrom with an empty source.
//
// Errors: ErrNilString, ErrReleased, ErrNilBytes, ErrAllocation.
func (s *String) SetBytes(p []byte) error {
	if err := s.valid(); err != nil {
		return opError("SetBytes", err)
	}
	if p == nil {
		return opError("SetBytes", ErrNilBytes)
	}

	return s.assign("SetBytes", len(p), func(dst []byte) { copy(dst, p) })
}

// SetString is SetBytes for a Go string.
//
// Errors: ErrNilString, ErrReleased, ErrAllocation.
func (s *String) SetString(str string) error {
	if err := s.valid(); err != nil {
		return opError("SetString", err)
	}

	return s.assign("SetString", len(str), func(dst []byte) { copy(dst, str) })
}

// SetInt replaces the content of s with the decimal representation of n:
// a leading '-' for negative values, no leading zeros, "0" for zero.
// The buffer is resized for exactly that many bytes.
//
// Errors: ErrNilString, ErrReleased, ErrAllocation.
func (s *String) SetInt(n int64) error {
	if err := s.valid(); err != nil {
		return opError("SetInt", err)
	}

	var digits [maxInt64Digits]byte
	w := formatInt(digits[:], n)

	return s.assign("SetInt", w, func(dst []byte) { copy(dst, digits[:w]) })
}

// assign resizes s for n bytes, lets fill write them and commits length.
// An empty assignment requests the default capacity instead of zero.
func (s *String) assign(op string, n int, fill func(dst []byte)) error {
	target := n
	if n == 0 {
		target = s.cfg.defaultCapacity
	}
	if err := s.resize(target); err != nil {
		return opError(op, err)
	}
	fill(s.buf[:n])
	s.length = n

	return nil
}
