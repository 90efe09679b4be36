package bytestr

import "slices"

// Sort orders items ascending by Compare. Nil and released entries sort
// before all others. The sort is not stable.
func Sort(items []*String) {
	slices.SortFunc(items, byteOrderOf)
}

// SortFunc orders items by cmp, which must return a negative number when its
// first argument sorts first, zero for equivalent items and a positive number
// otherwise. The sort is not stable.
//
// Errors: ErrNilFunc.
func SortFunc(items []*String, cmp func(a, b *String) int) error {
	if cmp == nil {
		return opError("SortFunc", ErrNilFunc)
	}
	slices.SortFunc(items, cmp)

	return nil
}

// byteOrderOf is the comparator behind Sort.
func byteOrderOf(a, b *String) int {
	aBad, bBad := a.valid() != nil, b.valid() != nil
	switch {
	case aBad && bBad:
		return 0
	case aBad:
		return -1
	case bBad:
		return 1
	}

	return int(orderOf(a.content(), b.content(), ByteOrder))
}
