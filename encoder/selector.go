// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "math"

// modeNone is a sentinel meaning "no decisive winner yet" while scanning.
const modeNone Mode = -1

// selectMode runs the look-ahead cost model from the current input
// position and returns the mode the driver/packer should switch to
// next. It does not consume any input.
func selectMode(s *encodeState) Mode {
	costs := initialCosts(s.mode)

	scanned := 0
	for {
		b, ok := s.in.peek(scanned)
		if !ok {
			break
		}
		applyCosts(&costs, b)
		scanned++
		if scanned >= 4 {
			if m := decide(s, costs); m != modeNone {
				return postFilter(s, m)
			}
		}
	}
	return postFilter(s, roundedMinimum(costs))
}

// initialCosts seeds the six mode accumulators, discounting every mode
// by 1 when ASCII is the active mode, then zeroing the active mode's
// own cost (no latch needed to stay there).
func initialCosts(current Mode) [6]float64 {
	costs := [6]float64{
		Ascii:   1,
		C40:     2,
		Text:    2,
		X12:     2,
		Edifact: 2,
		Base256: 2.25,
	}
	if current == Ascii {
		for m := range costs {
			costs[m]--
		}
	}
	costs[current] = 0
	return costs
}

// applyCosts grows every mode's accumulator by the cost of packing b in
// that mode.
func applyCosts(costs *[6]float64, b byte) {
	switch {
	case isDigit(b):
		costs[Ascii] += 0.5
	case isExtendedASCII(b):
		costs[Ascii] = math.Ceil(costs[Ascii]) + 2.0
	default:
		costs[Ascii] = math.Ceil(costs[Ascii]) + 1.0
	}

	costs[C40] += tierCost(b, isNativeC40, 2.0/3, 4.0/3, 8.0/3)
	costs[Text] += tierCost(b, isNativeText, 2.0/3, 4.0/3, 8.0/3)
	costs[X12] += tierCost(b, isNativeX12, 2.0/3, 10.0/3, 13.0/3)
	costs[Edifact] += tierCost(b, isNativeEdifact, 3.0/4, 13.0/4, 17.0/4)

	costs[Base256]++
}

// tierCost returns the native/non-native/extended cost for b given a
// mode's native-character predicate. This shape is shared by C40, Text,
// X12 and EDIFACT - only the predicate and the three magnitudes differ.
func tierCost(b byte, native func(byte) bool, nativeCost, nonNativeCost, extendedCost float64) float64 {
	switch {
	case native(b):
		return nativeCost
	case isExtendedASCII(b):
		return extendedCost
	default:
		return nonNativeCost
	}
}

// decide applies the priority-ordered comparison rule once at least four
// bytes have been scanned. It returns modeNone if no mode has a decisive
// lead yet.
func decide(s *encodeState, costs [6]float64) Mode {
	c := func(m Mode) float64 { return math.Ceil(costs[m]) }

	asciiWins := true
	for m := Mode(0); m < 6; m++ {
		if m == Ascii {
			continue
		}
		if !(c(Ascii) < c(m)) {
			asciiWins = false
			break
		}
	}
	if asciiWins {
		return Ascii
	}

	minC40TextX12Edifact := math.Min(math.Min(c(C40), c(Text)), math.Min(c(X12), c(Edifact)))
	if c(Base256) < c(Ascii) || c(Base256)+1 < minC40TextX12Edifact {
		return Base256
	}

	minExcluding := func(exclude Mode) float64 {
		m := math.Inf(1)
		for mm := Mode(0); mm < 6; mm++ {
			if mm == exclude {
				continue
			}
			m = math.Min(m, c(mm))
		}
		return m
	}
	if c(Edifact)+1 < minExcluding(Edifact) {
		return Edifact
	}
	if c(Text)+1 < minExcluding(Text) {
		return Text
	}
	if c(X12)+1 < minExcluding(X12) {
		return X12
	}

	c40Wins := c(C40) < c(Ascii) && c(C40) < c(Text) && c(C40) < c(Edifact) && c(C40) < c(Base256)
	if c40Wins {
		if x12SpecialBeforeNonNative(s) {
			return X12
		}
		return C40
	}

	return modeNone
}

// x12SpecialBeforeNonNative breaks the C40/X12 tie: it scans ahead from
// the current input position and reports whether an X12-special byte
// (CR, *, >) occurs before the first byte that isn't native X12.
func x12SpecialBeforeNonNative(s *encodeState) bool {
	for n := 0; ; n++ {
		b, ok := s.in.peek(n)
		if !ok || !isNativeX12(b) {
			return false
		}
		if isSpecialToX12(b) {
			return true
		}
	}
}

// roundedMinimum is the fallback used when the input ends before a
// decisive winner emerges: pick the rounded-cost minimum, ties broken in
// the fixed order Ascii, Base256, Edifact, Text, X12, C40.
func roundedMinimum(costs [6]float64) Mode {
	order := [...]Mode{Ascii, Base256, Edifact, Text, X12, C40}
	best := order[0]
	bestVal := math.Round(costs[best])
	for _, m := range order[1:] {
		v := math.Round(costs[m])
		if v < bestVal {
			bestVal = v
			best = m
		}
	}
	return best
}

// postFilter applies the X12/EDIFACT look-ahead sanity checks: the
// selector may only stay latched in X12 or EDIFACT if enough upcoming
// bytes are actually native to that mode, otherwise it falls back to
// ASCII.
func postFilter(s *encodeState, chosen Mode) Mode {
	switch {
	case chosen == X12 && s.mode == X12:
		for n := 0; n < 3; n++ {
			b, ok := s.in.peek(n)
			if !ok || !isNativeX12(b) {
				return Ascii
			}
		}
	case chosen == Edifact && s.mode == Edifact:
		for n := 0; n < 4; n++ {
			b, ok := s.in.peek(n)
			if !ok || !isNativeEdifact(b) {
				return Ascii
			}
		}
	}
	return chosen
}
