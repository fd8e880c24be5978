package blockio

import "github.com/tinycodec/mdeflate"

// slidingHistory keeps the trailing mdeflate.MaxCodebookBack bytes of
// payload seen so far, the context each new block's match finder (on
// encode) or back-copy (on decode) needs into the previous block. This
// plays the role the reference driver's fixed history buffer plays, minus
// the position-indexed hash chains a brute-force match finder has no use
// for: just the trailing bytes themselves.
type slidingHistory struct {
	buf []byte
}

// window returns the bytes currently held as history.
func (h *slidingHistory) window() []byte {
	return h.buf
}

// advance appends payload (a just-encoded/decoded block) to the window and
// trims it back down to at most MaxCodebookBack bytes.
func (h *slidingHistory) advance(payload []byte) {
	h.buf = append(h.buf, payload...)
	if excess := len(h.buf) - mdeflate.MaxCodebookBack; excess > 0 {
		h.buf = append(h.buf[:0], h.buf[excess:]...)
	}
}
