// SPDX-License-Identifier: MIT
// Copyright (c) 2026 tinycodec

package mdeflate

// Block encoder (§4.5): accumulate a symbol stream while scanning for
// matches, build the four code trees from the resulting frequencies, then
// emit the self-describing header and body in a second pass.

// symKind distinguishes the three kinds of event recorded while scanning.
type symKind uint8

const (
	symLiteral symKind = iota
	symMatch
	symEndOfBlock
)

// symEvent is one entry of the symbol stream built during the scan pass and
// replayed during the emit pass.
type symEvent struct {
	kind symKind

	// symLiteral
	lowNibble  uint8
	highNibble uint8

	// symMatch
	mainSym        uint8
	lengthExtra    uint32
	lengthExtraLen uint8
	offSym         uint8
	offsetExtra    uint32
	offsetExtraLen uint8
}

// encoder holds the scratch state for one block encode: symbol-frequency
// tables, the symbol stream, and a shared code builder. Callers obtain one
// from the package's sync.Pool rather than allocating per block.
type encoder struct {
	main [numMainSymbols]encNode
	lit  [numLiteralSymbols]encNode
	off  [numOffsetSymbols]encNode
	meta [numBLSymbols]encNode

	events  []symEvent
	builder codeBuilder
	bits    bitWriter
}

func newEncoder() *encoder {
	return &encoder{events: make([]symEvent, 0, BlockSize+1)}
}

func (e *encoder) reset() {
	for i := range e.main {
		e.main[i] = encNode{}
	}
	for i := range e.lit {
		e.lit[i] = encNode{}
	}
	for i := range e.off {
		e.off[i] = encNode{}
	}
	for i := range e.meta {
		e.meta[i] = encNode{}
	}
	e.events = e.events[:0]
	e.bits = bitWriter{out: e.bits.out[:0]}
}

// encodeBlock implements §4.5 end to end, returning the compressed bytes for
// one block. history is the tail of the previous block (possibly empty for
// the first block of a stream); the match finder may reach back into it.
func (e *encoder) encodeBlock(in []byte, history []byte) ([]byte, error) {
	e.reset()
	if e.bits.out == nil {
		e.bits.out = make([]byte, 0, len(in)+maxOutputExpansion)
	}

	e.scan(in, history)

	e.events = append(e.events, symEvent{kind: symEndOfBlock})
	e.main[EndOfBlock].count++

	mainNNZ, err := e.builder.build(e.main[:], MaxCWLength)
	if err != nil {
		return nil, err
	}
	if mainNNZ > 0 {
		if err := assignCodewords(e.main[:], MaxCWLength); err != nil {
			return nil, err
		}
	}

	litNNZ, err := e.builder.build(e.lit[:], MaxCWLength)
	if err != nil {
		return nil, err
	}
	if litNNZ > 0 {
		if err := assignCodewords(e.lit[:], MaxCWLength); err != nil {
			return nil, err
		}
	}

	offNNZ, err := e.builder.build(e.off[:], MaxCWLength)
	if err != nil {
		return nil, err
	}
	if offNNZ > 0 {
		if err := assignCodewords(e.off[:], MaxCWLength); err != nil {
			return nil, err
		}
	}

	for i := range e.main {
		e.meta[e.main[i].cwLength].count++
	}
	for i := range e.lit {
		e.meta[e.lit[i].cwLength].count++
	}
	for i := range e.off {
		e.meta[e.off[i].cwLength].count++
	}

	if _, err := e.builder.build(e.meta[:], MaxBLCWLength); err != nil {
		return nil, err
	}
	if err := assignCodewords(e.meta[:], MaxBLCWLength); err != nil {
		return nil, err
	}

	for i := range e.meta {
		e.bits.writeBits(uint32(e.meta[i].cwLength), 3)
	}

	e.emitLengthVector(e.main[:])
	e.emitLengthVector(e.lit[:])
	e.emitLengthVector(e.off[:])

	for _, ev := range e.events {
		switch ev.kind {
		case symLiteral:
			e.bits.writeBits(uint32(e.main[ev.lowNibble].cw), int(e.main[ev.lowNibble].cwLength))
			e.bits.writeBits(uint32(e.lit[ev.highNibble].cw), int(e.lit[ev.highNibble].cwLength))
		case symMatch:
			e.bits.writeBits(uint32(e.main[ev.mainSym].cw), int(e.main[ev.mainSym].cwLength))
			if ev.lengthExtraLen > 0 {
				e.bits.writeBits(ev.lengthExtra, int(ev.lengthExtraLen))
			}
			e.bits.writeBits(uint32(e.off[ev.offSym].cw), int(e.off[ev.offSym].cwLength))
			if ev.offsetExtraLen > 0 {
				e.bits.writeBits(ev.offsetExtra, int(ev.offsetExtraLen))
			}
		case symEndOfBlock:
			e.bits.writeBits(uint32(e.main[EndOfBlock].cw), int(e.main[EndOfBlock].cwLength))
		}
	}

	e.bits.flush()

	out := make([]byte, len(e.bits.out))
	copy(out, e.bits.out)
	return out, nil
}

// emitLengthVector writes one meta-coded code-word for every node's
// cwLength, in symbol order (§4.5 step 7).
func (e *encoder) emitLengthVector(nodes []encNode) {
	for i := range nodes {
		m := &e.meta[nodes[i].cwLength]
		e.bits.writeBits(uint32(m.cw), int(m.cwLength))
	}
}

// scan walks in computing literals and matches with one-step lookahead
// (§4.3), accumulating symbol-frequency counts and the replay stream.
func (e *encoder) scan(in []byte, history []byte) {
	src := matchSource{history: history, data: in}
	pos := 0
	var cached match
	haveCached := false

	for pos < len(in) {
		if haveCached {
			haveCached = false
			e.emitMatch(cached)
			pos += cached.length
			continue
		}

		m0 := findMatch(src, pos)

		if m0.length == 0 {
			e.emitLiteral(in[pos])
			pos++
			continue
		}

		if pos+1 < len(in) {
			m1 := findMatch(src, pos+1)
			if m1.length > m0.length {
				e.emitLiteral(in[pos])
				pos++
				cached = m1
				haveCached = true
				continue
			}
		}

		e.emitMatch(m0)
		pos += m0.length
	}
}

func (e *encoder) emitLiteral(b byte) {
	low := b & 0x0f
	high := b >> 4
	e.main[low].count++
	e.lit[high].count++
	e.events = append(e.events, symEvent{kind: symLiteral, lowNibble: low, highNibble: high})
}

func (e *encoder) emitMatch(m match) {
	reducedLen := int32(m.length - MatchLengthOffset)
	lenSym := lengthLUT[reducedLen]
	lenExtraLen := uint8(lengthExtra[lenSym])
	lenExtraVal := uint32(reducedLen - lengthBase[lenSym])

	reducedOff := int32(m.offset - 1)
	offSym := offsetLUT[reducedOff]
	offExtraLen := uint8(offsetExtra[offSym])
	offExtraVal := uint32(reducedOff - offsetBase[offSym])

	mainSym := uint8(lengthSymbolsOffset) + lenSym
	e.main[mainSym].count++
	e.off[offSym].count++

	e.events = append(e.events, symEvent{
		kind:           symMatch,
		mainSym:        mainSym,
		lengthExtra:    lenExtraVal,
		lengthExtraLen: lenExtraLen,
		offSym:         offSym,
		offsetExtra:    offExtraVal,
		offsetExtraLen: offExtraLen,
	})
}
