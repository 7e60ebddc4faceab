// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "github.com/rs/zerolog"

// cursor is a FIFO view over the remaining input bytes that also supports
// rewinding a few bytes back onto the head. The C40/Text and EDIFACT
// packers only ever rewind bytes they just consumed from the same
// cursor, so a plain index
// into the backing slice is enough; no separate push-front buffer is
// needed.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) cursor {
	return cursor{data: data}
}

// remaining returns the number of unread bytes.
func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

// next consumes and returns the byte at the head.
func (c *cursor) next() byte {
	b := c.data[c.pos]
	c.pos++
	return b
}

// peek returns the byte n positions ahead of the head (0 = next byte to
// be consumed) and whether that position exists.
func (c *cursor) peek(n int) (byte, bool) {
	i := c.pos + n
	if i < 0 || i >= len(c.data) {
		return 0, false
	}
	return c.data[i], true
}

// rewind pushes n previously consumed bytes back onto the head.
func (c *cursor) rewind(n int) {
	c.pos -= n
}

// encodeState is the mutable state threaded through one high-level
// encode call.
type encodeState struct {
	in   cursor
	out  []byte
	mode Mode
	form CodeForm
	log  zerolog.Logger
	err  error // set by a packer that fails without otherwise being able to report it (Base256 OutOfSpace)
}

func newEncodeState(data []byte, form CodeForm, log zerolog.Logger) *encodeState {
	return &encodeState{
		in:   newCursor(data),
		mode: Ascii,
		form: form,
		log:  log,
	}
}

// switchTo emits the wire codewords needed to move from the current mode
// to next and updates state.mode. It is a no-op if next already equals
// the current mode. Latch codewords are only valid when read starting
// from ASCII, so a switch away from a mode that requiresUnlatch always
// unlatches first, even when next is itself a different non-ASCII mode
// (a packer stopping mid-run because the selector jumped straight to
// another mode, e.g. C40 straight to Base256, leaves s.mode non-ASCII
// and relies on this to unlatch before the new latch is emitted).
func (s *encodeState) switchTo(next Mode) {
	if next == s.mode {
		return
	}
	s.log.Debug().Stringer("from", s.mode).Stringer("to", next).Msg("datamatrix: mode switch")
	if s.mode.requiresUnlatch() {
		s.out = append(s.out, cwUnlatchAscii)
	}
	// Edifact and Base256 never require the 254 unlatch: Edifact
	// unlatches in-band (0x1F sentinel) and Base256 is
	// self-terminating via its length prefix.
	if next != Ascii {
		s.out = append(s.out, latchCodeword(next))
	}
	s.mode = next
}

func latchCodeword(m Mode) byte {
	switch m {
	case C40:
		return cwLatchC40
	case Text:
		return cwLatchText
	case X12:
		return cwLatchX12
	case Edifact:
		return cwLatchEdifact
	case Base256:
		return cwLatchBase256
	default:
		panic("datamatrix/encoder: no latch codeword for mode " + m.String())
	}
}

// hasSpareCodewords reports whether the smallest symbol (under form) that
// fits one more codeword than currently emitted would still have room
// left over after that codeword - i.e. emitting exactly one more
// codeword would not exactly fill the symbol.
func hasSpareCodewords(out []byte, form CodeForm) bool {
	info, err := Lookup(len(out)+1, form)
	return err == nil && info.MaxDataCodewords > len(out)+1
}

// isLastCodewordSlot reports whether exactly one codeword slot remains
// in the smallest symbol (under form) that fits one more codeword than
// currently emitted.
func isLastCodewordSlot(out []byte, form CodeForm) bool {
	info, err := Lookup(len(out)+1, form)
	return err == nil && info.MaxDataCodewords == len(out)+1
}
