package transport

import (
	"errors"
	"io"

	"github.com/samber/oops"
)

// SendExact writes all of b to w, retrying on short writes.
func SendExact(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return oops.Wrapf(errors.Join(ErrIO, err), "write %d bytes", len(b))
		}
		if n == 0 {
			return oops.Wrapf(errors.Join(ErrIO, io.ErrShortWrite), "write %d bytes", len(b))
		}
		b = b[n:]
	}
	return nil
}

// RecvExact reads exactly n bytes from r. A stream that ends before n bytes
// have arrived fails with ErrConnectionClosed; partial data is never returned.
func RecvExact(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	read := 0
	for read < n {
		m, err := r.Read(buf[read:])
		read += m
		if read == n {
			break
		}
		if errors.Is(err, io.EOF) {
			return nil, oops.Wrapf(ErrConnectionClosed, "received %d of %d bytes", read, n)
		}
		if err != nil {
			return nil, oops.Wrapf(errors.Join(ErrIO, err), "received %d of %d bytes", read, n)
		}
	}
	return buf, nil
}
