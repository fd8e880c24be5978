// Package blockio drives the mdeflate core across a stream: framing blocks
// with a 16-bit length prefix, chunking input into BlockSize pieces, and
// keeping the sliding history window each block needs for back-references
// into the previous one. None of this is part of the wire format's core
// codec — it is the "file I/O driver" the core spec describes as an
// external collaborator.
package blockio
