package reedsolomon

import "testing"

func TestDataMatrixField256Properties(t *testing.T) {
	gf := DataMatrixField256
	if gf.Size() != 256 {
		t.Fatalf("Size() = %d, want 256", gf.Size())
	}
	if gf.GeneratorBase() != 1 {
		t.Fatalf("GeneratorBase() = %d, want 1", gf.GeneratorBase())
	}

	// alpha^0 == 1, and exp/log must be inverses of each other over the
	// full non-zero range.
	if gf.Exp(0) != 1 {
		t.Errorf("Exp(0) = %d, want 1", gf.Exp(0))
	}
	for a := 1; a < 256; a++ {
		if got := gf.Exp(gf.Log(a)); got != a {
			t.Errorf("Exp(Log(%d)) = %d, want %d", a, got, a)
		}
	}
}

func TestInverseIsMultiplicativeInverse(t *testing.T) {
	gf := DataMatrixField256
	for a := 1; a < 256; a++ {
		inv := gf.Inverse(a)
		if got := gf.Multiply(a, inv); got != 1 {
			t.Errorf("Multiply(%d, Inverse(%d)=%d) = %d, want 1", a, a, inv, got)
		}
	}
}

func TestMultiplyByZero(t *testing.T) {
	gf := DataMatrixField256
	for _, a := range []int{0, 1, 255} {
		if got := gf.Multiply(a, 0); got != 0 {
			t.Errorf("Multiply(%d, 0) = %d, want 0", a, got)
		}
	}
}
