// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// x12Value maps a native X12 byte to its packed value. Callers must
// only invoke this on bytes isNativeX12 accepts.
func x12Value(b byte) int {
	switch {
	case b == 0x0D:
		return 0
	case b == '*':
		return 1
	case b == '>':
		return 2
	case b == ' ':
		return 3
	case isDigit(b):
		return int(b-'0') + 4
	default: // 'A'-'Z'
		return int(b-'A') + 14
	}
}

// packX12 packs input three native X12 bytes at a time, re-consulting
// the selector after each triple. When fewer than three native X12
// bytes remain it unlatches to ASCII without consuming any of them.
func packX12(s *encodeState) {
	for {
		if !threeNativeX12Ahead(s) {
			s.out = append(s.out, cwUnlatchAscii)
			s.mode = Ascii
			return
		}

		a := x12Value(s.in.next())
		b := x12Value(s.in.next())
		c := x12Value(s.in.next())
		v := 1600*a + 40*b + c + 1
		s.out = append(s.out, byte(v/256), byte(v%256))

		if next := selectMode(s); next != X12 {
			return
		}
	}
}

func threeNativeX12Ahead(s *encodeState) bool {
	for n := 0; n < 3; n++ {
		b, ok := s.in.peek(n)
		if !ok || !isNativeX12(b) {
			return false
		}
	}
	return true
}
