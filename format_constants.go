// SPDX-License-Identifier: MIT
// Copyright (c) 2026 tinycodec

package mdeflate

// Format constants: block sizing, code-word length ceilings, and the symbol
// alphabets used by the main/literal/offset/meta trees. Bit-exact; part of
// the wire format.

// Block sizing.
const (
	// BlockSize is the maximum number of decoded bytes per block (32768 nibble symbols).
	BlockSize = 1 << 14
	// MaxCodebookBack is the maximum back-reference distance, in bytes.
	MaxCodebookBack = 1 << 14
	// maxOutputExpansion bounds worst-case header + incompressible-input overhead.
	maxOutputExpansion = BlockSize / 5
)

// Code-word length ceilings.
const (
	// MaxCWLength is the maximum code-word length for the main, literal, and offset trees.
	MaxCWLength = 8
	// MaxBLCWLength is the maximum code-word length for the meta (bit-length) tree.
	MaxBLCWLength = 7
)

// Main-tree symbol alphabet (25 symbols): nibble literals, END_OF_BLOCK, length symbols.
const (
	// maxLiteralSymbol is the highest low-nibble literal symbol (0..15).
	maxLiteralSymbol = 15
	// numLiteralSymbols is the size of the literal tree (high nibbles, 0..15).
	numLiteralSymbols = 16
	// EndOfBlock is the main-tree terminator symbol.
	EndOfBlock = 16
	// lengthSymbolsOffset is the main-tree index of the first length symbol.
	lengthSymbolsOffset = EndOfBlock + 1
	// numLengthSymbols is the number of length symbols (extra bits 0..7).
	numLengthSymbols = 8
	// numMainSymbols is the size of the main tree (16 literals + EOB + 8 length symbols).
	numMainSymbols = EndOfBlock + numLengthSymbols + 1
	// numOffsetSymbols is the size of the offset tree.
	numOffsetSymbols = 32
	// numBLSymbols is the size of the meta tree (code-word lengths 0..MaxCWLength).
	numBLSymbols = MaxCWLength + 1
)

// Match length/offset bounds.
const (
	// MatchLengthOffset is the minimum match length encodable by the format.
	MatchLengthOffset = 3
	// MaxMatchLength truncates matches the encoder will emit.
	MaxMatchLength = 256
)

// lengthExtra is the extra-bit count for each length symbol.
var lengthExtra = [numLengthSymbols]int{0, 1, 2, 3, 4, 5, 6, 7}

// offsetExtra is the extra-bit count for each offset symbol.
var offsetExtra = [numOffsetSymbols]int{
	0, 1, 2, 4, 6, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8,
	8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8,
}
