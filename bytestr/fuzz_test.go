package bytestr_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/strlab/bytestr"
)

// FuzzSetBytes checks RawBytes reproduces the input plus a terminator and
// that capacity never drops below length.
func FuzzSetBytes(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte(TextSentence))
	f.Add([]byte(TextLong))
	f.Add([]byte{0, 1, 2, 0xff})

	f.Fuzz(func(t *testing.T, p []byte) {
		if p == nil {
			p = []byte{}
		}
		s := newString(t)
		if err := s.SetBytes(p); err != nil {
			t.Fatalf("SetBytes: %v", err)
		}

		raw, err := s.RawBytes()
		if err != nil {
			t.Fatalf("RawBytes: %v", err)
		}
		if !bytes.Equal(raw[:len(raw)-1], p) || raw[len(raw)-1] != bytestr.Terminator {
			t.Errorf("content mismatch: got %q, want %q", raw, p)
		}
		if n, c := mustLen(t, s), mustCap(t, s); n != len(p) || c < n {
			t.Errorf("length %d capacity %d for input of %d bytes", n, c, len(p))
		}
	})
}

// FuzzSetInt checks the decimal round trip for every int64.
func FuzzSetInt(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(-1234567))
	f.Add(int64(1) << 62)
	f.Add(int64(-1) << 63)

	f.Fuzz(func(t *testing.T, n int64) {
		s := newString(t)
		if err := s.SetInt(n); err != nil {
			t.Fatalf("SetInt: %v", err)
		}
		got, err := s.Int()
		if err != nil {
			t.Fatalf("Int(%q): %v", s, err)
		}
		if got != n {
			t.Errorf("round trip: got %d, want %d", got, n)
		}
	})
}

// FuzzFilter checks Filter is idempotent and only removes matching bytes.
func FuzzFilter(f *testing.F) {
	f.Add(TextFilter, byte('a'))
	f.Add(TextLong, byte(' '))
	f.Add("", byte(0))

	f.Fuzz(func(t *testing.T, content string, drop byte) {
		s := fromString(t, content)
		pred := func(c byte) bool { return c == drop }

		removed, err := s.Filter(pred)
		if err != nil {
			t.Fatalf("Filter: %v", err)
		}
		once := s.String()
		if removed != len(content)-len(once) || bytes.IndexByte([]byte(once), drop) >= 0 {
			t.Errorf("filter of %q by %q gave %q (removed %d)", content, drop, once, removed)
		}

		again, err := s.Filter(pred)
		if err != nil || again != 0 || s.String() != once {
			t.Errorf("second pass changed %q to %q (removed %d, err %v)", once, s.String(), again, err)
		}
	})
}
