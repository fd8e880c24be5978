// SPDX-License-Identifier: MIT
// Copyright (c) 2026 tinycodec

package mdeflate

import "errors"

// Sentinel errors for block encoding and decoding.
var (
	// ErrInputTooLarge is returned when the input exceeds BlockSize decoded bytes.
	ErrInputTooLarge = errors.New("input exceeds BlockSize")
	// ErrInputOverrun is returned when the compressed input is shorter than the two bytes the
	// bit reader preloads. Reads past the end of a longer input yield zero bits, not an error.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when the decoder would write past BlockSize output bytes.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrLookBehindUnderrun is returned when a back-reference points before the start of the
	// available output (including any prior-block history the caller supplied).
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")

	// ErrCodeConstructionFailure is returned when canonical code-word assignment does not
	// consume the full code space (Kraft sum mismatch). Indicates an internal logic error in
	// the code builder; never expected from well-formed input.
	ErrCodeConstructionFailure = errors.New("code construction failure: kraft sum mismatch")
	// ErrOrderSortFailure is returned when the code builder's frequency ranking step cannot
	// find the next-highest-count node. Indicates an internal logic error.
	ErrOrderSortFailure = errors.New("order sort failure")
	// ErrLiteralPairingFailure is returned by the decoder when, after a low-nibble literal
	// symbol, the paired high-nibble symbol is not a valid literal-tree symbol. Indicates a
	// corrupted or adversarial stream.
	ErrLiteralPairingFailure = errors.New("literal pairing failure: corrupted stream")
)
