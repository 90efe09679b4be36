// Package bytestr provides String, a growable byte string that owns its
// buffer and manages capacity with a hysteresis policy instead of relying on
// Go's built-in string growth.
//
// What is a String?
//
//	A String keeps three facts apart: the bytes it owns (buf), how many of them
//	are meaningful (length) and how many were allocated (capacity).
//	capacity >= length always holds, and nothing past length is ever read.
//
// Capacity policy:
//
//	For a requested size n the buffer is reallocated to exactly n bytes when
//	  • capacity < n                        (grow), or
//	  • capacity - n > ShrinkThreshold (16) (shrink).
//	Anything in between keeps the current buffer, so small edits never churn
//	the allocator. A fresh String has length 0 and capacity 16.
//
// Operations:
//
//	// lifecycle
//	New(opts ...Option) (*String, error)
//	(*String).Release()                          // nil / repeated: no-op
//	(*String).Clone() (*String, error)
//
//	// assignment
//	(*String).SetFrom(src *String) error
//	(*String).SetBytes(p []byte) error           // nil p: ErrNilBytes
//	(*String).SetString(s string) error
//	(*String).SetInt(n int64) error
//
//	// queries
//	(*String).Len() (int, error)
//	(*String).Cap() (int, error)
//	(*String).RawBytes() ([]byte, error)         // content + Terminator
//	(*String).Int() (int64, error)
//	(*String).MemoryUsage() (int, error)
//
//	// comparison
//	Compare(a, b) / CompareFunc(a, b, cmp) (Ordering, error)
//	Equal(a, b)   / EqualFunc(a, b, eq)    (bool, error)
//
//	// transformation
//	(*String).Filter(drop func(byte) bool) (removed int, err error)
//	Concat(a, b, result *String) error           // result must differ from a and b
//	(*String).Append(src *String) error          // s.Append(s) doubles s
//	Sort(items) / SortFunc(items, cmp)
//
//	// output
//	(*String).WriteTo(w io.Writer) (int64, error)
//
// Errors:
//
//	ErrAllocation      – the allocator refused a buffer; the instance is unchanged
//	ErrInvalidArgument – nil/released handle (ErrNilString, ErrReleased), nil input
//	                     (ErrNilBytes, ErrNilFunc, ErrNilWriter), aliasing (ErrAliasing)
//	ErrFormat          – Int could not parse the content (ErrEmpty, ErrSyntax, ErrRange),
//	                     reported as *NumError
//
// Bytes are opaque: there is no encoding awareness, and a zero byte is
// ordinary content. A String is not safe for concurrent use; serialize
// access externally or keep one instance per goroutine.
package bytestr
