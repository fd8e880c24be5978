// SPDX-License-Identifier: MIT
// Copyright (c) 2026 tinycodec

/*
Package mdeflate implements the mdeflate block codec: a deflate-inspired,
nibble-oriented compressor built around LZ77-style back-references and
length-limited prefix coding, optimized for a tiny decoder rather than peak
ratio.

Each call to EncodeBlock/DecodeBlock handles one self-describing block of up
to BlockSize decoded bytes. Blocks carry their own code tables (a small
meta-tree over code-word lengths, then the main/literal/offset trees
themselves), so a block can be decoded on its own given only the previous
block's payload as optional back-reference context.

# Encode

	out, err := mdeflate.EncodeBlock(data, nil)

history is the tail of whatever preceded data — typically the previous
block's decoded payload when chaining blocks across a stream, or nil for the
first block. See the blockio package for the sliding-window bookkeeping that
makes this practical across a stream.

# Decode

	out, err := mdeflate.DecodeBlock(compressed, history, out)

DecodeBlock returns the decoded bytes up to the block's END_OF_BLOCK
terminator, written into out. history must be the same bytes the encoder
had available for this block.
*/
package mdeflate
