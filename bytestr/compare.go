// SPDX-License-Identifier: MIT

package bytestr

// Compare orders a and b lexicographically by byte value.
// It is CompareFunc(a, b, ByteOrder).
func Compare(a, b *String) (Ordering, error) {
	return compareWith("Compare", a, b, ByteOrder)
}

// CompareFunc orders a and b lexicographically under cmp.
//
// The first min(len(a), len(b)) bytes are compared in order; the first
// non-zero cmp result decides. If all of them are equivalent the shorter
// string sorts first, and equal lengths compare OrderEqual.
//
// Errors: ErrNilString, ErrReleased, ErrNilFunc.
//
// Complexity: O(min(len(a), len(b))).
func CompareFunc(a, b *String, cmp ByteCompareFunc) (Ordering, error) {
	return compareWith("CompareFunc", a, b, cmp)
}

func compareWith(op string, a, b *String, cmp ByteCompareFunc) (Ordering, error) {
	if err := checkPair(a, b); err != nil {
		return OrderEqual, opError(op, err)
	}
	if cmp == nil {
		return OrderEqual, opError(op, ErrNilFunc)
	}

	return orderOf(a.content(), b.content(), cmp), nil
}

func orderOf(x, y []byte, cmp ByteCompareFunc) Ordering {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		if r := cmp(x[i], y[i]); r != 0 {
			return sign(r)
		}
	}

	return sign(len(x) - len(y))
}

func sign(r int) Ordering {
	switch {
	case r < 0:
		return OrderLess
	case r > 0:
		return OrderGreater
	default:
		return OrderEqual
	}
}

// Equal reports whether a and b hold identical bytes.
// It is EqualFunc(a, b, ByteEqual).
func Equal(a, b *String) (bool, error) {
	return equalWith("Equal", a, b, ByteEqual)
}

// EqualFunc reports whether a and b have the same length and eq holds for
// every pair of corresponding bytes. It stops at the first mismatch.
//
// Errors: ErrNilString, ErrReleased, ErrNilFunc.
func EqualFunc(a, b *String, eq ByteEqualFunc) (bool, error) {
	return equalWith("EqualFunc", a, b, eq)
}

func equalWith(op string, a, b *String, eq ByteEqualFunc) (bool, error) {
	if err := checkPair(a, b); err != nil {
		return false, opError(op, err)
	}
	if eq == nil {
		return false, opError(op, ErrNilFunc)
	}
	if a.length != b.length {
		return false, nil
	}
	x, y := a.content(), b.content()
	for i := range x {
		if !eq(x[i], y[i]) {
			return false, nil
		}
	}

	return true, nil
}

func checkPair(a, b *String) error {
	if err := a.valid(); err != nil {
		return err
	}

	return b.valid()
}
