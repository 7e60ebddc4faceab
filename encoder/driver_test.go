package encoder

import (
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

// highLevelCodewords replays Encode's preamble+selector+packer loop and
// post-loop unlatch/pad finalization, stopping short of Reed-Solomon and
// placement so the pre-ECC codeword sequence can be asserted directly.
func highLevelCodewords(t *testing.T, data []byte, codeType CodeType, form CodeForm) []byte {
	t.Helper()
	payload := preprocess(data, codeType)
	s := newEncodeState(payload, form, zerolog.Nop())
	emitPreamble(s, codeType)

	for s.in.remaining() > 0 && s.err == nil {
		next := selectMode(s)
		s.switchTo(next)
		runPacker(s, next)
	}
	if s.err != nil {
		t.Fatalf("packer error: %v", s.err)
	}

	info, err := Lookup(len(s.out), form)
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if len(s.out) < info.MaxDataCodewords && s.mode.requiresUnlatch() {
		s.out = append(s.out, cwUnlatchAscii)
	}
	if len(s.out) < info.MaxDataCodewords {
		padCodewords(s, info.MaxDataCodewords)
	}
	return s.out
}

// TestHighLevelLiteralScenarioFormat06 hand-verifies the full
// preamble+Text-packing+backtrack+unlatch sequence for a short lower-case
// payload wrapped in the Format06 envelope: Text mode packs two full
// triples, leaves one trailing character, backtracks it out under the
// spare-codewords rule, unlatches, and re-emits it as ASCII - landing
// exactly on the chosen symbol's capacity with no further padding.
func TestHighLevelLiteralScenarioFormat06(t *testing.T) {
	data := []byte("[)>\x1E06\x1Dcontent\x1E\x04")
	want := []byte{237, 239, 104, 124, 209, 44, 254, 117}
	got := highLevelCodewords(t, data, Format06, Square)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("codewords = %v, want %v", got, want)
	}
}

// TestHighLevelLiteralScenarioDigits is the double-digit-run scenario
// exercised end-to-end through the real driver loop (ascii_test.go's
// TestDoubleDigitRun exercises the lower-level packASCII loop directly).
func TestHighLevelLiteralScenarioDigits(t *testing.T) {
	data := []byte("001122334455667788994242")
	want := []byte{130, 141, 152, 163, 174, 185, 196, 207, 218, 229, 172, 172}
	got := highLevelCodewords(t, data, Default, Square)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("codewords = %v, want %v", got, want)
	}
}

func TestEncodeDigitsOnly(t *testing.T) {
	result, err := Encode([]byte("001122334455667788994242"), Default, Square, zerolog.Nop())
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if result.Width != result.Height {
		t.Errorf("Width/Height = %d/%d, want a square symbol", result.Width, result.Height)
	}
	wantBytesPerRow := (result.Width + 7) / 8
	if result.BytesPerRow != wantBytesPerRow {
		t.Errorf("BytesPerRow = %d, want %d", result.BytesPerRow, wantBytesPerRow)
	}
	if len(result.Bitmap) != result.BytesPerRow*result.Height {
		t.Errorf("len(Bitmap) = %d, want %d", len(result.Bitmap), result.BytesPerRow*result.Height)
	}
}

func TestEncodeEmptyInput(t *testing.T) {
	result, err := Encode(nil, Default, Square, zerolog.Nop())
	if err != nil {
		t.Fatalf("Encode(nil) error: %v", err)
	}
	if result == nil {
		t.Fatal("Encode(nil) returned a nil result")
	}
}

func TestEncodeSingleByte(t *testing.T) {
	if _, err := Encode([]byte{'X'}, Default, Square, zerolog.Nop()); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
}

func TestEncodeOutOfSpace(t *testing.T) {
	huge := make([]byte, 4000)
	for i := range huge {
		huge[i] = byte(128 + i%100) // extended bytes force Base256, overflowing the two-byte length field
	}
	if _, err := Encode(huge, Default, Square, zerolog.Nop()); err != ErrOutOfSpace {
		t.Fatalf("Encode error = %v, want ErrOutOfSpace", err)
	}
}

func TestEncodeRectangularForm(t *testing.T) {
	result, err := Encode([]byte("12"), Default, Rectangular, zerolog.Nop())
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if result.Width == result.Height {
		t.Errorf("Width/Height = %d/%d, want a rectangular (non-square) symbol", result.Width, result.Height)
	}
}

func TestPreprocessGS1StripsLeadingFNC1(t *testing.T) {
	data := append([]byte{cwFNC1}, []byte("0100012345")...)
	got := preprocess(data, GS1)
	if !reflect.DeepEqual(got, []byte("0100012345")) {
		t.Fatalf("preprocess(GS1) = %v, want %v", got, []byte("0100012345"))
	}
}

func TestPreprocessFormat06StripsEnvelope(t *testing.T) {
	data := []byte("[)>\x1E06\x1Dcontent\x1E\x04")
	got := preprocess(data, Format06)
	if string(got) != "content" {
		t.Fatalf("preprocess(Format06) = %q, want %q", got, "content")
	}
}

func TestEmitPreambleCodewords(t *testing.T) {
	cases := []struct {
		codeType CodeType
		want     byte
	}{
		{GS1, cwFNC1},
		{ReaderProgramming, cwLatchReaderPgm},
		{Format05, cwLatchFormat05},
		{Format06, cwLatchFormat06},
	}
	for _, c := range cases {
		s := newEncodeState(nil, Square, zerolog.Nop())
		emitPreamble(s, c.codeType)
		if !reflect.DeepEqual(s.out, []byte{c.want}) {
			t.Errorf("emitPreamble(%v) = %v, want [%d]", c.codeType, s.out, c.want)
		}
	}
}

func TestEmitPreambleDefaultIsEmpty(t *testing.T) {
	s := newEncodeState(nil, Square, zerolog.Nop())
	emitPreamble(s, Default)
	if len(s.out) != 0 {
		t.Errorf("emitPreamble(Default) = %v, want empty", s.out)
	}
}

// TestPadCodewordsFormula hand-verifies the closed-form pseudo-random
// pad sequence against the literal formula p = ((149n+149) mod 253) +
// 130, folded back into [130,254] when it overflows 254.
func TestPadCodewordsFormula(t *testing.T) {
	s := newEncodeState(nil, Square, zerolog.Nop())
	padCodewords(s, 5)
	if s.out[0] != cwAsciiPad {
		t.Fatalf("out[0] = %d, want end-of-data marker %d", s.out[0], cwAsciiPad)
	}
	for i := 1; i < len(s.out); i++ {
		n := i + 1
		p := ((149*n + 149) % 253) + 130
		if p > 254 {
			p -= 254
		}
		if s.out[i] != byte(p) {
			t.Errorf("out[%d] = %d, want %d", i, s.out[i], p)
		}
	}
	if len(s.out) != 5 {
		t.Fatalf("len(out) = %d, want 5", len(s.out))
	}
}
