// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// edifactValue maps a native EDIFACT byte (0x20-0x5E) to its 6-bit
// value. Both halves of the native range collapse to the same mask:
// 0x20-0x3F is already below 0x40, and 0x40-0x5E minus 0x40 lands on
// the same bits.
func edifactValue(b byte) int {
	return int(b) & 0x3F
}

// packEdifact packs native EDIFACT bytes four at a time into three
// codewords, re-consulting the selector after every full group, and
// defers to finishEdifact once fewer than four native values remain.
func packEdifact(s *encodeState) {
	var buf []int

	for {
		for len(buf) < 4 {
			b, ok := s.in.peek(0)
			if !ok || !isNativeEdifact(b) {
				break
			}
			s.in.next()
			buf = append(buf, edifactValue(b))
		}

		if len(buf) < 4 {
			finishEdifact(s, buf)
			return
		}

		emitEdifactGroup(s, buf)
		buf = buf[:0]

		if next := selectMode(s); next != Edifact {
			finishEdifact(s, buf)
			return
		}
	}
}

func emitEdifactGroup(s *encodeState, vals []int) {
	v := 0x40000*vals[0] + 0x1000*vals[1] + 0x40*vals[2] + vals[3]
	s.out = append(s.out, byte(v>>16), byte((v>>8)&0xFF), byte(v&0xFF))
}

// finishEdifact leaves EDIFACT mode with 0-3 buffered native values still
// unflushed. If those leftover bytes would exactly fill the symbol's data
// capacity if re-emitted as ASCII, the unlatch sentinel is skipped
// entirely and the bytes are rewound for the driver to encode as ASCII.
// Otherwise the sentinel 0x1F is appended as the next 6-bit value and the
// partial group is flushed, emitting only as many codewords as the
// buffered bit count requires.
func finishEdifact(s *encodeState, buf []int) {
	leftover := len(buf)
	info, err := Lookup(len(s.out)+leftover, s.form)
	if err == nil && info.MaxDataCodewords == len(s.out)+leftover {
		s.in.rewind(leftover)
		s.mode = Ascii
		return
	}

	k := leftover + 1
	vals := make([]int, 4)
	copy(vals, buf)
	vals[leftover] = edifactUnlatchBits

	v := 0x40000*vals[0] + 0x1000*vals[1] + 0x40*vals[2] + vals[3]
	codewords := [3]byte{byte(v >> 16), byte((v >> 8) & 0xFF), byte(v & 0xFF)}
	n := (6*k + 7) / 8
	s.out = append(s.out, codewords[:n]...)
	s.mode = Ascii
}
