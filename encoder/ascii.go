// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// packASCII consumes exactly one unit of input in ASCII mode and appends
// the resulting codeword(s) to state.out. A "unit"
// is a digit pair when both the head byte and its successor are digits,
// otherwise a single byte.
func packASCII(s *encodeState) {
	c := s.in.next()

	if isDigit(c) {
		if next, ok := s.in.peek(0); ok && isDigit(next) {
			s.in.next()
			pair := (int(c)-'0')*10 + int(next-'0')
			s.out = append(s.out, byte(pair+130))
			return
		}
	}

	if isExtendedASCII(c) {
		s.out = append(s.out, cwAsciiUpper, c-128+1)
		return
	}

	s.out = append(s.out, c+1)
}
