package encoder

import "testing"

// TestRasterClockTrackPrefix hand-verifies the literal bitmap-prefix
// property for a 1-region square symbol: the top row alternates black/
// white starting with black at column 0 (the clock track), which packs
// MSB-first into the repeating byte 0x55.
func TestRasterClockTrackPrefix(t *testing.T) {
	info, err := Lookup(3, Square) // smallest entry: 10x10, 1x1 regions
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	codewords := make([]byte, info.TotalCodewords())
	g := newGrid(codewords, info.DataColumns(), info.DataRows())
	g.place()

	result := raster(g, info)
	if result.Width != 10 || result.Height != 10 {
		t.Fatalf("Width/Height = %d/%d, want 10/10", result.Width, result.Height)
	}
	if result.BytesPerRow != 2 {
		t.Fatalf("BytesPerRow = %d, want 2", result.BytesPerRow)
	}
	if got := result.Bitmap[0]; got != 0x55 {
		t.Errorf("first byte of top row = 0x%02X, want 0x55", got)
	}
}

// TestRasterBitmapSizeInvariant checks Bitmap length equals
// bytesPerRow*height for every symbol size, and bytesPerRow is the
// ceiling of columns/8.
func TestRasterBitmapSizeInvariant(t *testing.T) {
	for _, si := range symbols {
		codewords := make([]byte, si.TotalCodewords())
		g := newGrid(codewords, si.DataColumns(), si.DataRows())
		g.place()
		result := raster(g, &si)

		wantBytesPerRow := (si.Columns + 7) / 8
		if result.BytesPerRow != wantBytesPerRow {
			t.Errorf("%+v: BytesPerRow = %d, want %d", si, result.BytesPerRow, wantBytesPerRow)
		}
		if len(result.Bitmap) != result.BytesPerRow*result.Height {
			t.Errorf("%+v: len(Bitmap) = %d, want %d", si, len(result.Bitmap), result.BytesPerRow*result.Height)
		}
		if result.Height != si.Rows || result.Width != si.Columns {
			t.Errorf("%+v: Width/Height = %d/%d, want %d/%d", si, result.Width, result.Height, si.Columns, si.Rows)
		}
	}
}
