// SPDX-License-Identifier: MIT

package bytestr

import "math"

// Terminator is appended by RawBytes. It is not part of the logical content.
const Terminator byte = 0

// maxInt64Digits fits "-9223372036854775808".
const maxInt64Digits = 20

// RawBytes returns a newly allocated copy of the content followed by
// Terminator. len(result) == Len()+1. A nil receiver yields (nil, nil).
//
// Errors: ErrReleased, ErrAllocation.
func (s *String) RawBytes() ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	if s.released {
		return nil, opError("RawBytes", ErrReleased)
	}

	out, err := s.terminated()
	if err != nil {
		return nil, opError("RawBytes", err)
	}

	return out, nil
}

// terminated copies the content of a valid s followed by Terminator.
func (s *String) terminated() ([]byte, error) {
	out, err := allocate(copyAllocator(s.cfg.alloc), s.length+1)
	if err != nil {
		return nil, err
	}
	copy(out, s.content())
	out[s.length] = Terminator

	return out, nil
}

// Int parses the content as a base-10 int64.
//
// Accepted form: an optional single '-' at position 0 followed by one or
// more ASCII digits. Leading zeros are allowed. Values outside the int64
// range are rejected rather than wrapped.
//
// Errors:
//   - ErrNilString, ErrReleased (wrapped with the operation name).
//   - *NumError carrying ErrEmpty, ErrSyntax or ErrRange; errors.Is(err, ErrFormat) holds.
func (s *String) Int() (int64, error) {
	if err := s.valid(); err != nil {
		return 0, opError("Int", err)
	}

	return parseInt("Int", s.content())
}

func parseInt(fn string, b []byte) (int64, error) {
	if len(b) == 0 {
		return 0, numError(fn, b, ErrEmpty)
	}
	neg := b[0] == '-'
	digits := b
	if neg {
		digits = b[1:]
	}
	if len(digits) == 0 {
		return 0, numError(fn, b, ErrSyntax)
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, numError(fn, b, ErrSyntax)
		}
	}

	limit := uint64(math.MaxInt64)
	if neg {
		limit++ // |MinInt64|
	}
	var mag uint64
	for _, c := range digits {
		d := uint64(c - '0')
		if mag > (limit-d)/10 {
			return 0, numError(fn, b, ErrRange)
		}
		mag = mag*10 + d
	}
	if neg {
		return -int64(mag), nil
	}

	return int64(mag), nil
}

// formatInt writes the decimal form of n into dst, most significant digit
// first, and returns the number of bytes written. dst must hold
// maxInt64Digits bytes.
func formatInt(dst []byte, n int64) int {
	i := 0
	mag := uint64(n)
	if n < 0 {
		dst[i] = '-'
		i++
		mag = -mag
	}

	// p is the place value of the leading digit.
	p := uint64(1)
	for mag/p >= 10 {
		p *= 10
	}
	for ; p > 0; p /= 10 {
		dst[i] = byte('0' + mag/p)
		mag %= p
		i++
	}

	return i
}
