// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// randomizeBase256 applies the position-dependent permutation Base256
// uses on both its length field and its data bytes. n is the 0-based
// position of the resulting codeword within the full output stream.
func randomizeBase256(ch byte, n int) byte {
	return byte((int(ch) + ((n*149)%254) + 1) % 256)
}

// packBase256 collects a contiguous run of bytes for as long as the
// selector keeps choosing Base256, then emits it as a length field
// (one or two bytes) followed by the randomized data bytes. Returns
// ErrOutOfSpace if the run is too long for the two-byte length
// encoding.
func packBase256(s *encodeState) error {
	var run []byte
	for s.in.remaining() > 0 {
		run = append(run, s.in.next())
		if next := selectMode(s); next != Base256 {
			break
		}
	}

	length := len(run)
	lengthPos := len(s.out)

	if length <= 254 {
		s.out = append(s.out, randomizeBase256(byte(length), lengthPos))
	} else {
		hi := length / 250
		if hi > 6 {
			return ErrOutOfSpace
		}
		s.out = append(s.out,
			randomizeBase256(byte(hi+249), lengthPos),
			randomizeBase256(byte(length%250), lengthPos+1),
		)
	}

	dataStart := len(s.out)
	for i, b := range run {
		s.out = append(s.out, randomizeBase256(b, dataStart+i))
	}
	return nil
}
