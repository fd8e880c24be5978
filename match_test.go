package mdeflate

import "testing"

func TestFindMatchBasic(t *testing.T) {
	data := []byte("ABABABABABABABABAB")
	src := matchSource{data: data}

	m := findMatch(src, 2)
	if m.length < MatchLengthOffset {
		t.Fatalf("expected a match at position 2, got length %d", m.length)
	}
	if m.offset != 2 {
		t.Fatalf("expected offset 2, got %d", m.offset)
	}

	for i := 0; i < m.length; i++ {
		if data[2+i] != data[2-m.offset+i] {
			t.Fatalf("match bytes mismatch at %d", i)
		}
	}
}

func TestFindMatchNoneAtStart(t *testing.T) {
	data := []byte("hello world")
	src := matchSource{data: data}
	m := findMatch(src, 0)
	if m.length != 0 {
		t.Fatalf("expected no match at position 0 with no history, got %+v", m)
	}
}

func TestFindMatchReachesIntoHistory(t *testing.T) {
	history := []byte("xyzxyzxyzxyz")
	data := []byte("xyzxyzxyzxyz")
	src := matchSource{history: history, data: data}

	m := findMatch(src, 0)
	if m.length < MatchLengthOffset {
		t.Fatalf("expected match reaching into history, got %+v", m)
	}
}

func TestFindMatchProfitabilityFilterAppliesSpecFormula(t *testing.T) {
	// Place a 3-byte match at an offset large enough to need the offset
	// tree's full 8 extra bits, with no further extension possible. The
	// format's constant (14) never actually rejects an 8-extra-bit offset
	// (8+14 <= 24), so the match should still be emitted; this pins that
	// behavior so a future change to the constant is caught.
	data := make([]byte, 0, 400)
	data = append(data, 'x', 'y', 'z')
	for i := 0; i < 200; i++ {
		data = append(data, byte(i%100+1))
	}
	data = append(data, 'x', 'y', 'z', 'q')

	src := matchSource{data: data}
	pos := len(data) - 4
	m := findMatch(src, pos)
	if m.length != 3 {
		t.Fatalf("expected a length-3 match, got %+v", m)
	}

	sym := offsetLUT[m.offset-1]
	if int(offsetExtra[sym])+14 > MatchLengthOffset*8 {
		t.Fatalf("profitability filter should not reject this offset (extra=%d)", offsetExtra[sym])
	}
}

func TestFindMatchRespectsMaxMatchLength(t *testing.T) {
	data := make([]byte, 1000)
	src := matchSource{data: data}
	m := findMatch(src, 1)
	if m.length > MaxMatchLength {
		t.Fatalf("match length %d exceeds MaxMatchLength", m.length)
	}
}

func TestFindMatchTiesPreferSmallerOffset(t *testing.T) {
	data := []byte("abcabcabc")
	src := matchSource{data: data}
	m := findMatch(src, 6)
	if m.offset != 3 {
		t.Fatalf("expected smaller offset 3 on tie, got %d", m.offset)
	}
}

func TestMaxSearchDistanceMatchesOffsetTableCoverage(t *testing.T) {
	if maxSearchDistance != 6998 {
		t.Fatalf("maxSearchDistance = %d, want 6998 (offset extra-bit vector coverage - 1)", maxSearchDistance)
	}
}

func TestFindMatchDoesNotSearchBeyondOffsetTableCoverage(t *testing.T) {
	// A match only reachable at a distance between maxSearchDistance and
	// MaxCodebookBack must not be returned: its reduced offset would index
	// a zero-filled offsetLUT entry (offset symbol 0, zero extra bits), so
	// the encoder would silently write the wrong offset.
	const probeDistance = 10000
	if probeDistance <= int(maxSearchDistance) || probeDistance >= MaxCodebookBack {
		t.Fatalf("probe distance %d must sit strictly between maxSearchDistance (%d) and MaxCodebookBack (%d)",
			probeDistance, maxSearchDistance, MaxCodebookBack)
	}

	history := make([]byte, MaxCodebookBack)
	for i := range history {
		history[i] = byte(100 + i%50)
	}
	idx := len(history) - probeDistance
	history[idx], history[idx+1], history[idx+2] = 'A', 'B', 'C'

	data := make([]byte, 10)
	for i := range data {
		data[i] = byte(200 + i)
	}
	data[0], data[1], data[2] = 'A', 'B', 'C'

	src := matchSource{history: history, data: data}
	m := findMatch(src, 0)
	if m.length != 0 {
		t.Fatalf("match finder searched distance %d beyond maxSearchDistance %d, got %+v",
			probeDistance, maxSearchDistance, m)
	}
}
