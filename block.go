// SPDX-License-Identifier: MIT
// Copyright (c) 2026 tinycodec

package mdeflate

// EncodeBlock compresses data into one self-describing mdeflate block.
// history is the tail of whatever preceded data (typically the previous
// block's decoded payload when chaining blocks across a stream); pass nil
// for the first block. Back-references reach at most 6998 bytes before the
// current position (the coverage of the offset symbol table), so only that
// much of history's tail is ever searched — callers may pass a longer slice
// and the match finder will simply not search past that window.
//
// len(data) must be at most BlockSize; an empty data encodes to a
// header-only block holding just END_OF_BLOCK. EncodeBlock does not chunk
// oversized input itself (see the blockio package for that).
func EncodeBlock(data []byte, history []byte) ([]byte, error) {
	if len(data) > BlockSize {
		return nil, ErrInputTooLarge
	}

	e := getEncoder()
	defer putEncoder(e)

	return e.encodeBlock(data, history)
}

// DecodeBlock decodes one mdeflate block produced by EncodeBlock. history
// must be the same bytes the encoder was given for this block. out is the
// destination buffer and its length must be at least BlockSize bytes;
// DecodeBlock returns the prefix of out it actually wrote.
func DecodeBlock(data []byte, history []byte, out []byte) ([]byte, error) {
	if len(out) < BlockSize {
		return nil, ErrOutputOverrun
	}

	d := getDecoder()
	defer putDecoder(d)

	return d.decodeBlock(data, history, out)
}
