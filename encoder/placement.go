// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// grid holds the data-region cell matrix (the whole symbol with finder
// patterns stripped) while the ECC200 zig-zag placement algorithm
// fills it in.
type grid struct {
	codewords []byte
	rows      int
	columns   int
	bits      []int8 // -1 unvisited, 0 off, 1 on
}

func newGrid(codewords []byte, columns, rows int) *grid {
	g := &grid{codewords: codewords, rows: rows, columns: columns, bits: make([]int8, rows*columns)}
	for i := range g.bits {
		g.bits[i] = -1
	}
	return g
}

// at reports whether the cell at (col, row) is set.
func (g *grid) at(col, row int) bool {
	return g.bits[row*g.columns+col] == 1
}

func (g *grid) set(col, row int, bit bool) {
	if bit {
		g.bits[row*g.columns+col] = 1
	} else {
		g.bits[row*g.columns+col] = 0
	}
}

func (g *grid) visited(col, row int) bool {
	return g.bits[row*g.columns+col] >= 0
}

// place runs the ECC200 zig-zag placement algorithm, walking every codeword bit into its cell.
func (g *grid) place() {
	pos := 0
	row, col := 4, 0

	for {
		if row == g.rows && col == 0 {
			g.corner1(pos)
			pos++
		}
		if row == g.rows-2 && col == 0 && g.columns%4 != 0 {
			g.corner2(pos)
			pos++
		}
		if row == g.rows-2 && col == 0 && g.columns%8 == 4 {
			g.corner3(pos)
			pos++
		}
		if row == g.rows+4 && col == 2 && g.columns%8 == 0 {
			g.corner4(pos)
			pos++
		}

		for {
			if row < g.rows && col >= 0 && !g.visited(col, row) {
				g.utah(row, col, pos)
				pos++
			}
			row -= 2
			col += 2
			if row < 0 || col >= g.columns {
				break
			}
		}
		row++
		col += 3

		for {
			if row >= 0 && col < g.columns && !g.visited(col, row) {
				g.utah(row, col, pos)
				pos++
			}
			row += 2
			col -= 2
			if row >= g.rows || col < 0 {
				break
			}
		}
		row += 3
		col++

		if row >= g.rows && col >= g.columns {
			break
		}
	}

	if !g.visited(g.columns-1, g.rows-1) {
		g.set(g.columns-1, g.rows-1, true)
		g.set(g.columns-2, g.rows-2, true)
		g.set(g.columns-1, g.rows-2, false)
		g.set(g.columns-2, g.rows-1, false)
	}
}

// module places bit number bit (0=MSB..7=LSB) of codeword pos, wrapping
// an out-of-range (row, col) back onto the grid.
func (g *grid) module(row, col, pos, bit int) {
	if row < 0 {
		row += g.rows
		col += 4 - ((g.rows + 4) % 8)
	}
	if col < 0 {
		col += g.columns
		row += 4 - ((g.columns + 4) % 8)
	}
	if row >= g.rows {
		row -= g.rows
	}
	if col >= g.columns {
		col -= g.columns
	}

	v := false
	if pos < len(g.codewords) {
		v = g.codewords[pos]&(1<<uint(8-bit-1)) != 0
	}
	g.set(col, row, v)
}

// utah places the 8 modules of the standard diagonal shape, (row, col)
// being its lower-right corner.
func (g *grid) utah(row, col, pos int) {
	g.module(row-2, col-2, pos, 0)
	g.module(row-2, col-1, pos, 1)
	g.module(row-1, col-2, pos, 2)
	g.module(row-1, col-1, pos, 3)
	g.module(row-1, col, pos, 4)
	g.module(row, col-2, pos, 5)
	g.module(row, col-1, pos, 6)
	g.module(row, col, pos, 7)
}

func (g *grid) corner1(pos int) {
	g.module(g.rows-1, 0, pos, 0)
	g.module(g.rows-1, 1, pos, 1)
	g.module(g.rows-1, 2, pos, 2)
	g.module(0, g.columns-2, pos, 3)
	g.module(0, g.columns-1, pos, 4)
	g.module(1, g.columns-1, pos, 5)
	g.module(2, g.columns-1, pos, 6)
	g.module(3, g.columns-1, pos, 7)
}

func (g *grid) corner2(pos int) {
	g.module(g.rows-3, 0, pos, 0)
	g.module(g.rows-2, 0, pos, 1)
	g.module(g.rows-1, 0, pos, 2)
	g.module(0, g.columns-4, pos, 3)
	g.module(0, g.columns-3, pos, 4)
	g.module(0, g.columns-2, pos, 5)
	g.module(0, g.columns-1, pos, 6)
	g.module(1, g.columns-1, pos, 7)
}

func (g *grid) corner3(pos int) {
	g.module(g.rows-3, 0, pos, 0)
	g.module(g.rows-2, 0, pos, 1)
	g.module(g.rows-1, 0, pos, 2)
	g.module(0, g.columns-2, pos, 3)
	g.module(0, g.columns-1, pos, 4)
	g.module(1, g.columns-1, pos, 5)
	g.module(2, g.columns-1, pos, 6)
	g.module(3, g.columns-1, pos, 7)
}

func (g *grid) corner4(pos int) {
	g.module(g.rows-1, 0, pos, 0)
	g.module(g.rows-1, g.columns-1, pos, 1)
	g.module(0, g.columns-3, pos, 2)
	g.module(0, g.columns-2, pos, 3)
	g.module(0, g.columns-1, pos, 4)
	g.module(1, g.columns-3, pos, 5)
	g.module(1, g.columns-2, pos, 6)
	g.module(1, g.columns-1, pos, 7)
}
