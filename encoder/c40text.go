// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// c40TextAlphabet parameterizes the shared C40/Text packing arithmetic:
// the two modes differ only in which bytes Set 0 and Set 3 hold; Set 1
// (controls) and Set 2 (punctuation) are common to both.
type c40TextAlphabet struct {
	basic func(b byte) (int, bool)
	set3  func(b byte) (int, bool)
}

var c40Alphabet = c40TextAlphabet{
	basic: func(b byte) (int, bool) {
		switch {
		case b == ' ':
			return 3, true
		case isDigit(b):
			return int(b-'0') + 4, true
		case b >= 'A' && b <= 'Z':
			return int(b-'A') + 14, true
		}
		return 0, false
	},
	set3: func(b byte) (int, bool) {
		if b >= 0x60 && b <= 0x7F {
			return int(b - 0x60), true
		}
		return 0, false
	},
}

var textAlphabet = c40TextAlphabet{
	basic: func(b byte) (int, bool) {
		switch {
		case b == ' ':
			return 3, true
		case isDigit(b):
			return int(b-'0') + 4, true
		case b >= 'a' && b <= 'z':
			return int(b-'a') + 14, true
		}
		return 0, false
	},
	set3: func(b byte) (int, bool) {
		switch {
		case b == '`':
			return 0, true
		case b >= 'A' && b <= 'Z':
			return int(b-'A') + 1, true
		case b >= 0x7B && b <= 0x7F:
			return int(b-0x7B) + 27, true
		}
		return 0, false
	},
}

// set2Value maps C40/Text's Set 2 (prefix 1) punctuation characters,
// shared between both modes.
func set2Value(b byte) (int, bool) {
	switch {
	case b >= 0x21 && b <= 0x2F:
		return int(b - 0x21), true
	case b >= 0x3A && b <= 0x40:
		return int(b-0x3A) + 15, true
	case b >= 0x5B && b <= 0x5F:
		return int(b-0x5B) + 22, true
	}
	return 0, false
}

// shiftValuesFor returns the 1-4 ternary shift values that encode byte b
// under the given alphabet. Extended-ASCII bytes (>= 0x80) recurse
// through the Set-2 upper-shift prefix [1, 0x1e].
func shiftValuesFor(b byte, a c40TextAlphabet) []int {
	if b >= 0x80 {
		return append([]int{1, 0x1e}, shiftValuesFor(b-128, a)...)
	}
	if v, ok := a.basic(b); ok {
		return []int{v}
	}
	if b <= 0x1F {
		return []int{0, int(b)}
	}
	if v, ok := set2Value(b); ok {
		return []int{1, v}
	}
	if v, ok := a.set3(b); ok {
		return []int{2, v}
	}
	// Unreachable: the four sets above exhaustively cover 0x00-0x7F.
	return []int{0, int(b)}
}

// shiftChar pairs a source byte with the shift-value sequence it
// expanded to, needed because the packer may have to roll a whole
// multi-value char back onto the input.
type shiftChar struct {
	orig   byte
	shifts []int
}

// packC40Text runs the shared C40/Text packer for mode using alphabet,
// consuming input while selectMode keeps choosing mode, then applying
// the end-of-data rules.
func packC40Text(s *encodeState, mode Mode, alphabet c40TextAlphabet) {
	var buf []shiftChar
	flatLen := 0

	for s.in.remaining() > 0 {
		b := s.in.next()
		sc := shiftChar{orig: b, shifts: shiftValuesFor(b, alphabet)}
		buf = append(buf, sc)
		flatLen += len(sc.shifts)

		if flatLen%3 == 0 {
			if next := selectMode(s); next != mode {
				break
			}
		}
	}

	flat := make([]int, 0, flatLen)
	for _, sc := range buf {
		flat = append(flat, sc.shifts...)
	}

	i := 0
	for i+3 <= len(flat) {
		v := 1600*flat[i] + 40*flat[i+1] + flat[i+2] + 1
		s.out = append(s.out, byte(v/256), byte(v%256))
		i += 3
	}
	remainder := append([]int(nil), flat[i:]...)

	// Drop the fully-emitted leading chars so buf only covers remainder.
	buf = trailingChars(buf, len(remainder))

	forcedASCII := false
	for len(remainder)%3 == 1 && len(buf) > 0 && hasSpareCodewords(s.out, s.form) {
		last := buf[len(buf)-1]
		buf = buf[:len(buf)-1]
		s.in.rewind(1)
		remainder = remainder[:len(remainder)-len(last.shifts)]
		forcedASCII = true
	}

	switch len(remainder) % 3 {
	case 2:
		remainder = append(remainder, 0) // Set-1 dummy shift
		v := 1600*remainder[0] + 40*remainder[1] + remainder[2] + 1
		s.out = append(s.out, byte(v/256), byte(v%256))
	case 1:
		if isLastCodewordSlot(s.out, s.form) {
			v := 1600*remainder[0] + 1
			s.out = append(s.out, byte(v/256))
		}
	}

	if forcedASCII {
		s.out = append(s.out, cwUnlatchAscii)
		s.mode = Ascii
	}
}

// trailingChars returns the shortest suffix of buf whose shift values
// total at least n. When the first char of that suffix has some of its
// shift values inside an already emitted triple, the total exceeds n.
func trailingChars(buf []shiftChar, n int) []shiftChar {
	total := 0
	start := len(buf)
	for start > 0 && total < n {
		start--
		total += len(buf[start].shifts)
	}
	return buf[start:]
}

func packC40(s *encodeState) {
	packC40Text(s, C40, c40Alphabet)
}

func packText(s *encodeState) {
	packC40Text(s, Text, textAlphabet)
}
