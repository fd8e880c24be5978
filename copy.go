// SPDX-License-Identifier: MIT
// Copyright (c) 2026 tinycodec

package mdeflate

// copyMatch copies length bytes forward into out[pos:], reading from
// offset bytes before pos in the virtual stream formed by history followed
// by out[:pos]. It copies byte-by-byte (not via copy()) so that overlapping
// back-references, where offset < length, replicate the run correctly —
// each byte becomes visible to the read side as soon as it is written.
func copyMatch(history []byte, out []byte, pos, offset, length int) {
	src := pos - offset
	for i := 0; i < length; i++ {
		j := src + i
		var b byte
		if j < 0 {
			b = history[len(history)+j]
		} else {
			b = out[j]
		}
		out[pos+i] = b
	}
}
