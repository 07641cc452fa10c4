package transport

import (
	"encoding/binary"
	"io"

	"github.com/samber/oops"
)

// FrameHeaderSize is the length prefix size in bytes.
const FrameHeaderSize = 4

// WriteFrame sends payload as one length-prefixed frame.
func WriteFrame(w io.Writer, payload []byte) error {
	buf := make([]byte, FrameHeaderSize+len(payload))
	binary.BigEndian.PutUint32(buf[:FrameHeaderSize], uint32(len(payload)))
	copy(buf[FrameHeaderSize:], payload)
	return SendExact(w, buf)
}

// ReadFrame reads one frame and returns its payload, which is empty for a
// zero-length frame. When limit is non-zero, longer frames fail with
// ErrFrameTooLarge before any payload is read.
func ReadFrame(r io.Reader, limit uint32) ([]byte, error) {
	hdr, err := RecvExact(r, FrameHeaderSize)
	if err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(hdr)
	if limit > 0 && n > limit {
		return nil, oops.Wrapf(ErrFrameTooLarge, "frame of %d bytes, limit %d", n, limit)
	}
	if n == 0 {
		return []byte{}, nil
	}
	return RecvExact(r, int(n))
}
