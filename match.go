// SPDX-License-Identifier: MIT
// Copyright (c) 2026 tinycodec

package mdeflate

// Brute-force backward match finder (§4.3): no hash chains, just a linear
// backward scan bounded by the available history. The format is tuned for a
// tiny decoder, not a fast encoder, so this mirrors the reference encoder's
// simplicity rather than reaching for a hash-chain dictionary.

// match is a candidate back-reference: length in bytes and backward distance.
type match struct {
	length int
	offset int
}

// matchSource lets the match finder address a virtual byte stream made of
// the previous block's trailing history followed by the current block, so a
// backward distance can reach before data[0] without the caller building a
// concatenated copy. at(i) with i in [-len(history), len(data)) returns the
// corresponding byte.
type matchSource struct {
	history []byte
	data    []byte
}

func (s matchSource) at(i int) byte {
	if i < 0 {
		return s.history[len(s.history)+i]
	}
	return s.data[i]
}

// findMatch scans backward from src.data[pos] for the longest run that also
// appears earlier in the virtual stream, up to maxSearchDistance bytes back
// (bounded further by however much history src actually carries). The
// offset symbol table, not MaxCodebookBack, is the real ceiling here: it
// only covers distances up to maxSearchDistance, and a match found beyond
// it would encode an offset the decoder can't recover.
func findMatch(src matchSource, pos int) match {
	limit := pos + len(src.history)
	if limit > int(maxSearchDistance) {
		limit = int(maxSearchDistance)
	}

	remaining := len(src.data) - pos
	maxLen := remaining
	if maxLen > MaxMatchLength {
		maxLen = MaxMatchLength
	}

	best := match{}
	if maxLen < MatchLengthOffset {
		return best
	}

	for k := 1; k <= limit; k++ {
		if src.at(pos-k) != src.at(pos) {
			continue
		}
		if best.length > 0 && src.at(pos-k+best.length) != src.at(pos+best.length) {
			continue
		}

		length := extendMatch(src, pos, k, maxLen)
		if length > best.length {
			best.length = length
			best.offset = k
			if best.length == maxLen {
				break
			}
		}
	}

	if best.length < MatchLengthOffset {
		return match{}
	}

	if best.length == MatchLengthOffset {
		sym := offsetLUT[best.offset-1]
		if int(offsetExtra[sym])+14 > MatchLengthOffset*8 {
			return match{}
		}
	}

	return best
}

// extendMatch extends a confirmed match at backward distance k as far as it
// will go, up to maxLen bytes.
func extendMatch(src matchSource, pos, k, maxLen int) int {
	length := 0
	for length < maxLen && src.at(pos-k+length) == src.at(pos+length) {
		length++
	}
	return length
}
