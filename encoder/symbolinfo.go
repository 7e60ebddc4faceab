// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "fmt"

// SymbolInfo is an immutable description of one ECC200 symbol size.
// Columns and Rows count the whole symbol including finder patterns;
// RegionsHorizontal/RegionsVertical count the data regions the finder
// grid divides it into.
type SymbolInfo struct {
	MaxDataCodewords    int
	Columns             int
	Rows                int
	RegionsHorizontal   int
	RegionsVertical     int
	NumberOfBlocks      int
	ReedSolomonPerBlock int
}

// DataColumns and DataRows return the data-region cell matrix
// dimensions used by the module placer and rasterizer: the whole
// symbol minus two finder rows/columns per region.
func (si *SymbolInfo) DataColumns() int { return si.Columns - 2*si.RegionsHorizontal }
func (si *SymbolInfo) DataRows() int    { return si.Rows - 2*si.RegionsVertical }

// TotalCodewords returns the data-plus-EC codeword count, which must
// equal the data-region cell count divided by 8.
func (si *SymbolInfo) TotalCodewords() int {
	return si.MaxDataCodewords + si.NumberOfBlocks*si.ReedSolomonPerBlock
}

// symbols is the 30-entry ECC200 size table: 24 square sizes
// 10x10..144x144 followed by 6 rectangular sizes, each group ordered
// ascending by MaxDataCodewords.
var symbols = []SymbolInfo{
	{3, 10, 10, 1, 1, 1, 5},
	{5, 12, 12, 1, 1, 1, 7},
	{8, 14, 14, 1, 1, 1, 10},
	{12, 16, 16, 1, 1, 1, 12},
	{18, 18, 18, 1, 1, 1, 14},
	{22, 20, 20, 1, 1, 1, 18},
	{30, 22, 22, 1, 1, 1, 20},
	{36, 24, 24, 1, 1, 1, 24},
	{44, 26, 26, 1, 1, 1, 28},
	{62, 32, 32, 2, 2, 1, 36},
	{86, 36, 36, 2, 2, 1, 42},
	{114, 40, 40, 2, 2, 1, 48},
	{144, 44, 44, 2, 2, 1, 56},
	{174, 48, 48, 2, 2, 1, 68},
	{204, 52, 52, 2, 2, 2, 42},
	{280, 64, 64, 4, 4, 2, 56},
	{368, 72, 72, 4, 4, 4, 36},
	{456, 80, 80, 4, 4, 4, 48},
	{576, 88, 88, 4, 4, 4, 56},
	{696, 96, 96, 4, 4, 4, 68},
	{816, 104, 104, 4, 4, 6, 56},
	{1050, 120, 120, 6, 6, 6, 68},
	{1304, 132, 132, 6, 6, 8, 62},
	{1558, 144, 144, 6, 6, 10, 62},

	{5, 18, 8, 1, 1, 1, 7},
	{10, 32, 8, 2, 1, 1, 11},
	{16, 26, 12, 1, 1, 1, 14},
	{22, 36, 12, 2, 1, 1, 18},
	{32, 36, 16, 2, 1, 1, 24},
	{49, 48, 16, 2, 1, 1, 28},
}

// Lookup returns the smallest symbol whose MaxDataCodewords can hold n
// data codewords, restricted by form: Square keeps rows==columns,
// Rectangular keeps rows!=columns, PreferRectangular admits either.
// Returns ErrOutOfSpace if no entry qualifies.
func Lookup(n int, form CodeForm) (*SymbolInfo, error) {
	var best *SymbolInfo
	for i := range symbols {
		si := &symbols[i]
		square := si.Rows == si.Columns
		switch form {
		case Square:
			if !square {
				continue
			}
		case Rectangular:
			if square {
				continue
			}
		}
		if si.MaxDataCodewords >= n && (best == nil || si.MaxDataCodewords < best.MaxDataCodewords) {
			best = si
		}
	}
	if best != nil {
		return best, nil
	}
	return nil, fmt.Errorf("datamatrix/encoder: %w (%d data codewords, form %v)", ErrOutOfSpace, n, form)
}
