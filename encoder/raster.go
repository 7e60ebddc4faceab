// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "github.com/barcodelib/datamatrix/bitutil"

// Result is the finished symbol: a packed 1-bit-per-pixel bitmap,
// row-major, MSB first, each row padded to a byte boundary, 0 = black.
type Result struct {
	Bitmap      []byte
	BytesPerRow int
	Width       int
	Height      int
}

// raster overlays the placement grid's data-region cells onto the full
// symbol surface with finder patterns and clock tracks, then packs the
// result into Result's byte format.
func raster(g *grid, info *SymbolInfo) *Result {
	matrix := bitutil.NewBitMatrixWithSize(info.Columns, info.Rows)

	drRows := g.rows / info.RegionsVertical
	drCols := g.columns / info.RegionsHorizontal

	for v := 0; v < info.RegionsVertical; v++ {
		for h := 0; h < info.RegionsHorizontal; h++ {
			originX := h * (drCols + 2)
			originY := v * (drRows + 2)

			for y := 0; y < drRows+2; y++ {
				matrix.Set(originX, originY+y)
			}
			for x := 0; x < drCols+2; x++ {
				matrix.Set(originX+x, originY+drRows+1)
			}
			for x := 0; x < drCols+2; x++ {
				if x%2 == 0 {
					matrix.Set(originX+x, originY)
				}
			}
			for y := 0; y < drRows+2; y++ {
				if y%2 == 1 {
					matrix.Set(originX+drCols+1, originY+y)
				}
			}
		}
	}

	for v := 0; v < info.RegionsVertical; v++ {
		for h := 0; h < info.RegionsHorizontal; h++ {
			for r := 0; r < drRows; r++ {
				for c := 0; c < drCols; c++ {
					if !g.at(h*drCols+c, v*drRows+r) {
						continue
					}
					symbolX := h*(drCols+2) + c + 1
					symbolY := v*(drRows+2) + r + 1
					matrix.Set(symbolX, symbolY)
				}
			}
		}
	}

	return pack(matrix)
}

// pack converts matrix (on = black) into Result's wire format: a 0xFF
// (all white) seeded buffer with bits cleared for black modules, MSB
// left, each row padded to a byte boundary.
func pack(matrix *bitutil.BitMatrix) *Result {
	width, height := matrix.Width(), matrix.Height()
	bytesPerRow := (width + 7) / 8
	bitmap := make([]byte, bytesPerRow*height)
	for i := range bitmap {
		bitmap[i] = 0xFF
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if matrix.Get(x, y) {
				bitmap[y*bytesPerRow+x/8] &^= 1 << uint(7-x%8)
			}
		}
	}

	return &Result{Bitmap: bitmap, BytesPerRow: bytesPerRow, Width: width, Height: height}
}
