// SPDX-License-Identifier: MIT

package bytestr

// Filter removes every byte for which drop returns true, keeping the order
// of the remaining bytes, and returns how many bytes were removed.
//
// Kept bytes are gathered in an auxiliary buffer and copied back, so the
// source is never read and written at the same time. Capacity is left as is.
//
// Errors: ErrNilString, ErrReleased, ErrNilFunc, ErrAllocation (for the
// auxiliary buffer). On error s is unchanged.
//
// Complexity: O(Len()) time, O(Len()) extra space.
func (s *String) Filter(drop func(c byte) bool) (removed int, err error) {
	if err = s.valid(); err != nil {
		return 0, opError("Filter", err)
	}
	if drop == nil {
		return 0, opError("Filter", ErrNilFunc)
	}

	aux, err := allocate(s.cfg.alloc, s.length)
	if err != nil {
		return 0, opError("Filter", err)
	}
	kept := 0
	for _, c := range s.content() {
		if drop(c) {
			continue
		}
		aux[kept] = c
		kept++
	}
	copy(s.buf, aux[:kept])
	removed = s.length - kept
	s.length = kept

	return removed, nil
}

// Concat stores the bytes of a followed by the bytes of b in result.
// result is resized for exactly Len(a)+Len(b) bytes. a and b may be the
// same instance; result must differ from both.
//
// Errors: ErrNilString, ErrReleased, ErrAliasing, ErrAllocation.
// On error result is unchanged.
func Concat(a, b, result *String) error {
	if err := checkPair(a, b); err != nil {
		return opError("Concat", err)
	}
	if err := result.valid(); err != nil {
		return opError("Concat", err)
	}
	if result == a || result == b {
		return opError("Concat", ErrAliasing)
	}
	if err := concat(a, b, result); err != nil {
		return opError("Concat", err)
	}

	return nil
}

// concat is Concat without argument checks; errors are untagged.
func concat(a, b, result *String) error {
	total := a.length + b.length
	if err := result.resize(total); err != nil {
		return err
	}
	copy(result.buf, a.content())
	copy(result.buf[a.length:], b.content())
	result.length = total

	return nil
}

// Append appends the content of src to s. Unlike Concat it accepts
// s == src, which doubles the content.
//
// Errors: ErrNilString, ErrReleased, ErrAllocation. On error s is unchanged.
func (s *String) Append(src *String) error {
	if err := checkPair(s, src); err != nil {
		return opError("Append", err)
	}

	tmp, err := newWithConfig(s.cfg)
	if err != nil {
		return opError("Append", err)
	}
	defer tmp.Release()

	if err = concat(s, src, tmp); err != nil {
		return opError("Append", err)
	}

	return s.assign("Append", tmp.length, func(dst []byte) { copy(dst, tmp.content()) })
}
