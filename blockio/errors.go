package blockio

import "errors"

// Sentinel errors for stream framing.
var (
	// ErrFrameTooLarge is returned when a frame's declared length exceeds what a
	// single mdeflate block can produce, or when a stream holds more blocks
	// than ReaderOptions.MaxBlocks allows.
	ErrFrameTooLarge = errors.New("blockio: frame exceeds maximum block size")
	// ErrShortFrame is returned when the stream ends mid-frame.
	ErrShortFrame = errors.New("blockio: truncated frame")
)
