// SPDX-License-Identifier: MIT
// Copyright (c) 2026 tinycodec

package mdeflate

import "sync"

// Encoder and decoder scratch state is sizeable (the tree arenas alone run
// to several KB) and reset-by-zeroing is cheap, so both sides borrow from a
// sync.Pool instead of allocating fresh state per block.
var (
	encoderPool = sync.Pool{New: func() any { return newEncoder() }}
	decoderPool = sync.Pool{New: func() any { return newDecoder() }}
)

func getEncoder() *encoder {
	return encoderPool.Get().(*encoder)
}

func putEncoder(e *encoder) {
	encoderPool.Put(e)
}

func getDecoder() *decoder {
	return decoderPool.Get().(*decoder)
}

func putDecoder(d *decoder) {
	decoderPool.Put(d)
}
