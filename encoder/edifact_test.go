package encoder

import (
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

func TestEdifactValue(t *testing.T) {
	cases := []struct {
		b    byte
		want int
	}{
		{0x20, 0x20}, {0x3F, 0x3F}, {0x40, 0}, {0x5E, 0x1E},
	}
	for _, c := range cases {
		if got := edifactValue(c.b); got != c.want {
			t.Errorf("edifactValue(0x%02X) = 0x%02X, want 0x%02X", c.b, got, c.want)
		}
	}
}

func TestEmitEdifactGroupFullQuad(t *testing.T) {
	s := newEncodeState(nil, Square, zerolog.Nop())
	vals := []int{1, 2, 3, 4}
	emitEdifactGroup(s, vals)
	v := 0x40000*1 + 0x1000*2 + 0x40*3 + 4
	want := []byte{byte(v >> 16), byte((v >> 8) & 0xFF), byte(v & 0xFF)}
	if !reflect.DeepEqual(s.out, want) {
		t.Fatalf("out = %v, want %v", s.out, want)
	}
}

// TestFinishEdifactCodewordCounts hand-verifies the ceil(6k/8) partial
// flush rule for every possible leftover count (0-3 buffered values),
// where k = leftover+1 counts the unlatch sentinel as the next value.
func TestFinishEdifactCodewordCounts(t *testing.T) {
	cases := []struct {
		leftover  int
		wantBytes int
	}{
		{0, 1}, // k=1: ceil(6/8)  = 1
		{1, 2}, // k=2: ceil(12/8) = 2
		{2, 3}, // k=3: ceil(18/8) = 3
		{3, 3}, // k=4: ceil(24/8) = 3
	}
	for _, c := range cases {
		buf := make([]int, c.leftover)
		for i := range buf {
			buf[i] = i + 1
		}
		s := newEncodeState(nil, Square, zerolog.Nop())
		// Seed out with 40 already-emitted codewords: 40+leftover (40-43)
		// never exactly matches a table MaxDataCodewords entry, so the
		// exact-fill early return never fires and the general ceil(6k/8)
		// flush path always runs.
		s.out = make([]byte, 40)
		finishEdifact(s, buf)
		if got := len(s.out) - 40; got != c.wantBytes {
			t.Errorf("leftover=%d: emitted %d bytes, want %d", c.leftover, got, c.wantBytes)
		}
		if s.mode != Ascii {
			t.Errorf("leftover=%d: mode = %v, want Ascii", c.leftover, s.mode)
		}
	}
}

func TestFinishEdifactExactFillSkipsUnlatch(t *testing.T) {
	// Smallest symbol holds 3 data codewords; 3 leftover ASCII bytes would
	// exactly fill it, so the unlatch sentinel must be skipped and the
	// bytes rewound for ASCII re-encoding instead.
	s := newEncodeState([]byte{'x', 'y', 'z'}, Square, zerolog.Nop())
	buf := []int{edifactValue('x'), edifactValue('y'), edifactValue('z')}
	s.in.next()
	s.in.next()
	s.in.next()
	finishEdifact(s, buf)
	if len(s.out) != 0 {
		t.Fatalf("out = %v, want empty (unlatch skipped)", s.out)
	}
	if s.in.remaining() != 3 {
		t.Fatalf("remaining = %d, want 3 (bytes rewound)", s.in.remaining())
	}
	if s.mode != Ascii {
		t.Fatalf("mode = %v, want Ascii", s.mode)
	}
}
