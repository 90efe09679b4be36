package bytestr

// resize applies the capacity policy for a requested logical size n.
//
// The buffer is reallocated to exactly n bytes when it is too small
// (capacity < n) or when the slack exceeds the shrink threshold
// (capacity - n > threshold). Otherwise nothing happens.
//
// Bytes [0, min(length, n)) survive a reallocation. length itself is left
// to the caller, except that it is clamped to the new capacity on shrink.
// On failure s is untouched and the error is ErrAllocation.
func (s *String) resize(n int) error {
	if !s.needsResize(n) {
		return nil
	}

	buf, err := allocate(s.cfg.alloc, n)
	if err != nil {
		return err
	}
	keep := s.length
	if keep > n {
		keep = n
	}
	copy(buf, s.buf[:keep])

	s.buf = buf
	s.capacity = n
	s.length = keep

	return nil
}

func (s *String) needsResize(n int) bool {
	return s.capacity < n || s.capacity-n > s.cfg.shrinkThreshold
}
