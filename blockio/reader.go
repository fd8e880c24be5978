package blockio

import (
	"io"

	"github.com/tinycodec/mdeflate"
)

// ReaderOptions configures a Reader. The zero value is valid.
type ReaderOptions struct {
	// MaxBlocks limits how many blocks a Reader will decode; a further block
	// frame makes Read return ErrFrameTooLarge. 0 means no limit. Guards against an
	// adversarial stream with an absent or corrupt terminator frame.
	MaxBlocks int
}

// Reader decodes an mdeflate stream: framed blocks (§6.2) chained through a
// sliding history window (§5). It implements io.Reader.
type Reader struct {
	src     io.Reader
	opts    ReaderOptions
	history slidingHistory
	out     [mdeflate.BlockSize]byte
	pending []byte
	blocks  int
	done    bool
}

// NewReader wraps r as a decoding Reader using default options.
func NewReader(r io.Reader) *Reader {
	return NewReaderOptions(r, ReaderOptions{})
}

// NewReaderOptions wraps r as a decoding Reader with explicit options.
func NewReaderOptions(r io.Reader, opts ReaderOptions) *Reader {
	return &Reader{src: r, opts: opts}
}

// Read implements io.Reader, decoding one block at a time as needed.
func (r *Reader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		if r.done {
			return 0, io.EOF
		}
		if err := r.fill(); err != nil {
			return 0, err
		}
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

// fill decodes the next frame into r.pending, or marks the stream done on
// the terminator frame.
func (r *Reader) fill() error {
	payload, err := readFrame(r.src)
	if err != nil {
		return err
	}
	if payload == nil {
		r.done = true
		return nil
	}
	if r.opts.MaxBlocks > 0 && r.blocks >= r.opts.MaxBlocks {
		return ErrFrameTooLarge
	}

	decoded, err := mdeflate.DecodeBlock(payload, r.history.window(), r.out[:])
	if err != nil {
		return err
	}

	r.pending = append([]byte(nil), decoded...)
	r.history.advance(decoded)
	r.blocks++
	return nil
}
