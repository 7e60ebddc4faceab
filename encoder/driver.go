// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"bytes"

	"github.com/rs/zerolog"
)

// Encode runs the full ECC200 encoding pipeline over data - high-level
// encoding, symbol sizing, Reed-Solomon, module placement and
// rasterization - and returns the finished symbol.
// log receives mode-switch trace events; pass zerolog.Nop() for none.
func Encode(data []byte, codeType CodeType, form CodeForm, log zerolog.Logger) (*Result, error) {
	payload := preprocess(data, codeType)
	s := newEncodeState(payload, form, log)
	emitPreamble(s, codeType)

	for s.in.remaining() > 0 && s.err == nil {
		next := selectMode(s)
		s.switchTo(next)
		runPacker(s, next)
	}
	if s.err != nil {
		return nil, s.err
	}

	info, err := Lookup(len(s.out), form)
	if err != nil {
		return nil, err
	}
	if len(s.out) < info.MaxDataCodewords && s.mode.requiresUnlatch() {
		s.out = append(s.out, cwUnlatchAscii)
	}
	if len(s.out) < info.MaxDataCodewords {
		padCodewords(s, info.MaxDataCodewords)
	}

	full, err := encodeECC200(s.out, info)
	if err != nil {
		return nil, err
	}

	g := newGrid(full, info.DataColumns(), info.DataRows())
	g.place()

	return raster(g, info), nil
}

// runPacker dispatches to the packer for mode, running it exactly once.
func runPacker(s *encodeState, mode Mode) {
	switch mode {
	case Ascii:
		packASCII(s)
	case C40:
		packC40(s)
	case Text:
		packText(s)
	case X12:
		packX12(s)
	case Edifact:
		packEdifact(s)
	case Base256:
		if err := packBase256(s); err != nil {
			s.err = err
		}
	}
}

// padCodewords fills the remaining codewords up to capacity with the
// end-of-data marker followed by the 253-state pseudo-random pad
// sequence.
func padCodewords(s *encodeState, capacity int) {
	s.out = append(s.out, cwAsciiPad)
	for len(s.out) < capacity {
		n := len(s.out) + 1
		p := ((149*n + 149) % 253) + 130
		if p > 254 {
			p -= 254
		}
		s.out = append(s.out, byte(p))
	}
}

// emitPreamble writes the type-marker codeword for codeType, if any.
// Envelope stripping already happened in preprocess.
func emitPreamble(s *encodeState, codeType CodeType) {
	switch codeType {
	case GS1:
		s.out = append(s.out, cwFNC1)
	case ReaderProgramming:
		s.out = append(s.out, cwLatchReaderPgm)
	case Format05:
		s.out = append(s.out, cwLatchFormat05)
	case Format06:
		s.out = append(s.out, cwLatchFormat06)
	}
}

// preprocess strips the type-marker envelope from data before high-level
// encoding begins.
func preprocess(data []byte, codeType CodeType) []byte {
	switch codeType {
	case GS1:
		if len(data) > 0 && data[0] == cwFNC1 {
			return data[1:]
		}
	case Format05:
		return stripEnvelope(data, "05")
	case Format06:
		return stripEnvelope(data, "06")
	}
	return data
}

// stripEnvelope removes the "[)>\x1E<code>\x1D" prefix and "\x1E\x04"
// suffix if both are present, otherwise returns data unchanged.
func stripEnvelope(data []byte, code string) []byte {
	prefix := []byte("[)>\x1E" + code + "\x1D")
	suffix := []byte("\x1E\x04")
	if bytes.HasPrefix(data, prefix) && bytes.HasSuffix(data, suffix) {
		return data[len(prefix) : len(data)-len(suffix)]
	}
	return data
}
