// SPDX-License-Identifier: MIT
// Copyright (c) 2026 tinycodec

package mdeflate

// Length/offset symbol tables (§4.2): precomputed mappings between raw
// lengths/offsets and (symbol, extra-bits) pairs. These depend only on the
// fixed extra-bit vectors in format_constants.go, so they are built once at package load
// rather than per block.

var (
	// lengthLUT maps a reduced length (L - MatchLengthOffset) to its length-symbol index.
	// Sized to MaxMatchLength: the extra-bit vector's cumulative coverage (255 reduced
	// lengths) fills indices 0..254; the encoder never needs index 255.
	lengthLUT [MaxMatchLength]uint8
	// lengthBase[i] is the reduced length at which length symbol i begins.
	lengthBase [numLengthSymbols]int32
	// offsetLUT maps a reduced offset (O - 1) to its offset-symbol index.
	offsetLUT [MaxCodebookBack]uint8
	// offsetBase[i] is the reduced offset at which offset symbol i begins.
	offsetBase [numOffsetSymbols]int32

	// maxSearchDistance is the match finder's real backward-distance ceiling,
	// derived from the offset extra-bit vector's cumulative coverage rather
	// than taken from MaxCodebookBack. offsetExtra sums to 1+2+4+16+64+256*27
	// = 6999, so offsetLUT is only ever filled at indices 0..6998; searching
	// past this ceiling finds a "match" whose reduced offset indexes a
	// zeroed offsetLUT entry (offset symbol 0, zero extra bits), silently
	// corrupting the encoded offset. MaxCodebookBack (16384) remains the
	// format's declared window size and offsetLUT's array bound, but is not
	// itself a safe search limit.
	maxSearchDistance int32

	// maxSearchLength is the analogous derived ceiling for lengthLUT
	// (1+2+4+...+128-1 = 254). The encoder still clamps match length to
	// MaxMatchLength (256), the format's declared ceiling; this is kept on
	// record alongside maxSearchDistance rather than wired into the clamp,
	// since MaxMatchLength already round-trips correctly.
	maxSearchLength int32
)

func init() {
	offset := 0
	for sym := 0; sym < numOffsetSymbols; sym++ {
		offsetBase[sym] = int32(offset)
		size := 1 << offsetExtra[sym]
		for i := 0; i < size && offset < len(offsetLUT); i++ {
			offsetLUT[offset] = uint8(sym)
			offset++
		}
	}
	maxSearchDistance = int32(offset) - 1

	length := 0
	for sym := 0; sym < numLengthSymbols; sym++ {
		lengthBase[sym] = int32(length)
		size := 1 << lengthExtra[sym]
		for i := 0; i < size && length < len(lengthLUT); i++ {
			lengthLUT[length] = uint8(sym)
			length++
		}
	}
	maxSearchLength = int32(length) - 1
}
