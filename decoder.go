// SPDX-License-Identifier: MIT
// Copyright (c) 2026 tinycodec

package mdeflate

// Block decoder (§4.6): parse the meta tree, use it to recover the three
// data trees' code-word-length vectors, build 256-entry lookup tables for
// each, then dispatch symbol by symbol with back-copy.

// decodeTable is a canonical-code lookup for one tree: a 256-entry table
// indexed by the top 8 bits of the shift register, and the code-word length
// of the symbol found at each entry.
type decodeTable struct {
	symbol [1 << MaxCWLength]uint8
	// length is indexed by symbol value, not by the 8-bit prefix; sized to
	// the largest alphabet (the offset tree, 32 symbols) and reused for
	// smaller ones.
	length [numOffsetSymbols]uint8
}

// build fills the table from a code-word-length vector, mirroring §4.4 step
// 6 extended to the full 8-bit prefix: for cwLength = 1..MaxCWLength, for
// each symbol at that length in ascending index, fill 2^(8-cwLength)
// consecutive entries of symbol with that symbol index, and record its
// length under its own symbol slot.
func (t *decodeTable) build(cwLengths []uint8, maxCW int) {
	cw := 0
	for length := 1; length <= maxCW; length++ {
		cw <<= 1
		for sym := range cwLengths {
			if int(cwLengths[sym]) != length {
				continue
			}
			start := cw << uint(MaxCWLength-length)
			span := 1 << uint(MaxCWLength-length)
			for i := 0; i < span; i++ {
				t.symbol[start+i] = uint8(sym)
			}
			t.length[sym] = uint8(length)
			cw++
		}
	}
}

// decoder holds the scratch state for one block decode.
type decoder struct {
	mainLen [numMainSymbols]uint8
	litLen  [numLiteralSymbols]uint8
	offLen  [numOffsetSymbols]uint8
	metaLen [numBLSymbols]uint8

	mainTable decodeTable
	litTable  decodeTable
	offTable  decodeTable
	metaTable decodeTable
}

func newDecoder() *decoder {
	return &decoder{}
}

func (d *decoder) reset() {
	*d = decoder{}
}

// decodeBlock implements §4.6 end to end. history is the tail of the
// previous block's decoded payload (possibly empty), mirroring whatever
// history the stream's encoder had available; out is the destination
// buffer. It returns the slice of out actually written.
func (d *decoder) decodeBlock(in []byte, history []byte, out []byte) ([]byte, error) {
	d.reset()

	r, err := newBitReader(in)
	if err != nil {
		return nil, err
	}

	for i := range d.metaLen {
		d.metaLen[i] = r.readBits(3)
	}
	d.metaTable.build(d.metaLen[:], MaxBLCWLength)

	for i := range d.mainLen {
		d.mainLen[i] = d.readMetaSymbol(r)
	}
	for i := range d.litLen {
		d.litLen[i] = d.readMetaSymbol(r)
	}
	for i := range d.offLen {
		d.offLen[i] = d.readMetaSymbol(r)
	}

	d.mainTable.build(d.mainLen[:], MaxCWLength)
	d.litTable.build(d.litLen[:], MaxCWLength)
	d.offTable.build(d.offLen[:], MaxCWLength)

	n := 0
	for {
		sym := r.readSymbol(&d.mainTable.symbol, d.mainTable.length[:])

		switch {
		case sym <= maxLiteralSymbol:
			high := r.readSymbol(&d.litTable.symbol, d.litTable.length[:])
			if high > maxLiteralSymbol {
				return nil, ErrLiteralPairingFailure
			}
			if n >= len(out) {
				return nil, ErrOutputOverrun
			}
			out[n] = high<<4 | sym
			n++

		case sym == EndOfBlock:
			return out[:n], nil

		default:
			lenSym := int(sym) - lengthSymbolsOffset
			reducedLen := lengthBase[lenSym] + int32(r.readBits(int(lengthExtra[lenSym])))
			length := int(reducedLen) + MatchLengthOffset

			offSym := r.readSymbol(&d.offTable.symbol, d.offTable.length[:])
			reducedOff := offsetBase[offSym] + int32(r.readBits(int(offsetExtra[offSym])))
			offset := int(reducedOff) + 1

			if offset > n+len(history) {
				return nil, ErrLookBehindUnderrun
			}
			if n+length > len(out) {
				return nil, ErrOutputOverrun
			}

			copyMatch(history, out, n, offset, length)
			n += length
		}
	}
}

// readMetaSymbol reads one meta-coded code-word-length value.
func (d *decoder) readMetaSymbol(r *bitReader) uint8 {
	return r.readSymbol(&d.metaTable.symbol, d.metaTable.length[:])
}
