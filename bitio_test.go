package mdeflate

import "testing"

func TestBitWriterReaderRoundTrip(t *testing.T) {
	var w bitWriter
	values := []struct {
		v uint32
		n int
	}{
		{0x1, 1}, {0x5, 3}, {0xff, 8}, {0x3, 2}, {0x1234, 16}, {0x0, 5}, {0x7f, 7},
	}

	for _, tc := range values {
		w.writeBits(tc.v, tc.n)
	}
	w.flush()

	r, err := newBitReader(w.out)
	if err != nil {
		t.Fatalf("newBitReader: %v", err)
	}

	for i, tc := range values {
		got := uint32(0)
		remaining := tc.n
		for remaining > 8 {
			got = got<<8 | uint32(r.readBits(8))
			remaining -= 8
		}
		got = got<<uint(remaining) | uint32(r.readBits(remaining))
		if got != tc.v {
			t.Errorf("value %d: got %#x, want %#x", i, got, tc.v)
		}
	}
}

func TestBitWriterFlushPadsToByte(t *testing.T) {
	var w bitWriter
	w.writeBits(0x1, 1)
	w.flush()
	if len(w.out) != 1 {
		t.Fatalf("expected 1 byte after flush, got %d", len(w.out))
	}
	if w.out[0]&0x80 == 0 {
		t.Fatalf("expected top bit set, got %08b", w.out[0])
	}
}

func TestBitReaderPeek8DoesNotConsume(t *testing.T) {
	var w bitWriter
	w.writeBits(0xAB, 8)
	w.writeBits(0xCD, 8)
	w.flush()

	r, err := newBitReader(w.out)
	if err != nil {
		t.Fatalf("newBitReader: %v", err)
	}
	if got := r.peek8(); got != 0xAB {
		t.Fatalf("peek8 = %#x, want 0xAB", got)
	}
	if got := r.peek8(); got != 0xAB {
		t.Fatalf("second peek8 = %#x, want 0xAB (peek must not consume)", got)
	}
	r.consume(8)
	if got := r.peek8(); got != 0xCD {
		t.Fatalf("peek8 after consume = %#x, want 0xCD", got)
	}
}
