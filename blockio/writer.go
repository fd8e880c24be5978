package blockio

import (
	"io"

	"github.com/tinycodec/mdeflate"
)

// WriterOptions configures a Writer. The zero value is valid.
type WriterOptions struct{}

// Writer encodes a byte stream into framed mdeflate blocks (§6.2), chunking
// input into BlockSize pieces and chaining them through a sliding history
// window (§5) so later blocks can reference earlier ones. It implements
// io.WriteCloser; Close must be called to emit the final partial block and
// the terminator frame.
type Writer struct {
	dst     io.Writer
	history slidingHistory
	buf     []byte
	closed  bool
}

// NewWriter wraps w as an encoding Writer using default options.
func NewWriter(w io.Writer) *Writer {
	return NewWriterOptions(w, WriterOptions{})
}

// NewWriterOptions wraps w as an encoding Writer with explicit options.
func NewWriterOptions(w io.Writer, _ WriterOptions) *Writer {
	return &Writer{dst: w, buf: make([]byte, 0, mdeflate.BlockSize)}
}

// Write buffers p, flushing full BlockSize blocks as they accumulate. It
// never returns a short write without an error.
func (w *Writer) Write(p []byte) (int, error) {
	total := len(p)
	w.buf = append(w.buf, p...)

	for len(w.buf) >= mdeflate.BlockSize {
		if err := w.flushBlock(w.buf[:mdeflate.BlockSize]); err != nil {
			return 0, err
		}
		w.buf = append(w.buf[:0], w.buf[mdeflate.BlockSize:]...)
	}

	return total, nil
}

// Close flushes any buffered residual bytes as a final partial block, then
// writes the end-of-stream terminator frame. Close is idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if len(w.buf) > 0 {
		if err := w.flushBlock(w.buf); err != nil {
			return err
		}
		w.buf = nil
	}

	return writeFrame(w.dst, nil)
}

func (w *Writer) flushBlock(block []byte) error {
	encoded, err := mdeflate.EncodeBlock(block, w.history.window())
	if err != nil {
		return err
	}
	if err := writeFrame(w.dst, encoded); err != nil {
		return err
	}
	w.history.advance(block)
	return nil
}
