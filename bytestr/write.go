// SPDX-License-Identifier: MIT

package bytestr

import "io"

// flusher is implemented by buffered sinks such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// WriteTo writes the content of s to w and flushes w when it has a Flush
// method, so readers observe the bytes as soon as WriteTo returns.
// The content goes through the terminated copy produced by RawBytes; the
// terminator itself is not written.
//
// It implements io.WriterTo.
//
// Errors: ErrNilString, ErrReleased, ErrNilWriter, ErrAllocation,
// io.ErrShortWrite, or whatever w returns.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	if err := s.valid(); err != nil {
		return 0, opError("WriteTo", err)
	}
	if w == nil {
		return 0, opError("WriteTo", ErrNilWriter)
	}

	raw, err := s.terminated()
	if err != nil {
		return 0, opError("WriteTo", err)
	}
	payload := raw[:len(raw)-1]

	n, err := w.Write(payload)
	if err != nil {
		return int64(n), opError("WriteTo", err)
	}
	if n != len(payload) {
		return int64(n), opError("WriteTo", io.ErrShortWrite)
	}
	if err = flush(w); err != nil {
		return int64(n), opError("WriteTo", err)
	}

	return int64(n), nil
}

func flush(w io.Writer) error {
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}

	return nil
}
