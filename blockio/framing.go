package blockio

import (
	"encoding/binary"
	"io"

	"github.com/tinycodec/mdeflate"
)

// maxFrameLen is the largest payload a single encoded block can produce
// (§5's worst-case expansion bound), used to reject corrupt length prefixes
// before allocating a read buffer for them.
const maxFrameLen = mdeflate.BlockSize + mdeflate.BlockSize/5

// writeFrame writes one §6.2 frame: a big-endian u16 length prefix followed
// by payload. Passing a nil or empty payload writes the end-of-stream
// terminator frame.
func writeFrame(w io.Writer, payload []byte) error {
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(payload)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}
	_, err := w.Write(payload)
	return err
}

// readFrame reads one §6.2 frame. A nil, nil result marks the end-of-stream
// terminator frame. io.EOF is returned only if the stream ends before any
// bytes of a new frame are read; a frame that is cut short mid-payload
// returns ErrShortFrame.
func readFrame(r io.Reader) ([]byte, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, ErrShortFrame
		}
		return nil, err
	}

	n := binary.BigEndian.Uint16(lenBuf[:])
	if n == 0 {
		return nil, nil
	}
	if int(n) > maxFrameLen {
		return nil, ErrFrameTooLarge
	}

	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, ErrShortFrame
		}
		return nil, err
	}
	return payload, nil
}
