package bignum

import (
	"math/big"
	"strings"
	"testing"
)

func TestMulAgainstMathBig(t *testing.T) {
	tests := []struct{ a, b string }{
		{"0", "12345"},
		{"1", "123456789012345678901234567890"},
		{"274133054632352106267", "56649062372194325899121269007146717645316"},
		{"2147483647", "2147483647"},
	}

	for _, tt := range tests {
		a, b := New(), New()
		a.SetString(tt.a)
		b.SetString(tt.b)

		rop := New()
		rop.Mul(a, b)

		wa, _ := new(big.Int).SetString(tt.a, 10)
		wb, _ := new(big.Int).SetString(tt.b, 10)
		want := new(big.Int).Mul(wa, wb)

		if got := rop.String(); got != want.String() {
			t.Errorf("Mul(%s, %s) = %s, want %s", tt.a, tt.b, got, want.String())
		}
	}
}

// TestMulKaratsubaAgreesWithNaive forces operands above and below the
// Karatsuba cutoff to verify both code paths agree on the same product.
func TestMulKaratsubaAgreesWithNaive(t *testing.T) {
	// A decimal string with enough digits to push each operand's limb
	// count past karatsubaCutoff (31 bits/limb, ~9.3 decimal digits/limb).
	bigDigits := strings.Repeat("123456789", 40)

	a, b := New(), New()
	a.SetString(bigDigits)
	b.SetString(bigDigits)

	viaKaratsuba := New()
	viaKaratsuba.Mul(a, b)
	if len(a.data) < karatsubaCutoff {
		t.Fatalf("test fixture too small to exercise Karatsuba: %d limbs", len(a.data))
	}

	viaNaive := New()
	mulNaive(viaNaive, a, b)

	if viaKaratsuba.Cmp(viaNaive) != 0 {
		t.Errorf("mulKaratsuba disagrees with mulNaive:\n karatsuba=%s\n naive=%s", viaKaratsuba.String(), viaNaive.String())
	}
}

func TestSetKaratsubaCutoffOverridesThreshold(t *testing.T) {
	original := KaratsubaCutoff()
	defer SetKaratsubaCutoff(original)

	SetKaratsubaCutoff(4)
	if got := KaratsubaCutoff(); got != 4 {
		t.Fatalf("KaratsubaCutoff() = %d, want 4", got)
	}

	a, b := New(), New()
	a.SetString("123456789012345678901234567890")
	b.SetString("987654321098765432109876543210")

	rop := New()
	rop.Mul(a, b)

	wa, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	wb, _ := new(big.Int).SetString("987654321098765432109876543210", 10)
	want := new(big.Int).Mul(wa, wb)

	if got := rop.String(); got != want.String() {
		t.Errorf("Mul with lowered cutoff = %s, want %s", got, want.String())
	}
}

func TestSetKaratsubaCutoffIgnoresValuesBelowTwo(t *testing.T) {
	original := KaratsubaCutoff()
	defer SetKaratsubaCutoff(original)

	SetKaratsubaCutoff(5)
	SetKaratsubaCutoff(0)
	SetKaratsubaCutoff(-3)

	if got := KaratsubaCutoff(); got != 5 {
		t.Errorf("KaratsubaCutoff() = %d, want 5 (out-of-range values should be ignored)", got)
	}
}

func TestMulAliasingWithInput(t *testing.T) {
	a := New()
	a.SetString("123456789012345678901234567890")
	b := New()
	b.SetU32(2)

	a.Mul(a, b)

	want := new(big.Int)
	want.SetString("123456789012345678901234567890", 10)
	want.Mul(want, big.NewInt(2))

	if got := a.String(); got != want.String() {
		t.Errorf("Mul(a, b) with a aliasing rop = %s, want %s", got, want.String())
	}
}

func TestMulU32AgainstMathBig(t *testing.T) {
	tests := []struct {
		a string
		b uint32
	}{
		{"0", 0},
		{"1", 4294967295},
		{"2147483647", 2147483647}, // near-max limb times near-max scalar, carry fills one extra limb
		{"274133054632352106267", 999999937},
	}

	for _, tt := range tests {
		a := New()
		a.SetString(tt.a)

		rop := New()
		rop.MulU32(a, tt.b)

		wa, _ := new(big.Int).SetString(tt.a, 10)
		want := new(big.Int).Mul(wa, new(big.Int).SetUint64(uint64(tt.b)))

		if got := rop.String(); got != want.String() {
			t.Errorf("MulU32(%s, %d) = %s, want %s", tt.a, tt.b, got, want.String())
		}
	}
}

// TestMulU32CarryChainLongerThanOneLimb exercises a scalar multiply whose
// carry must flush across more than one extra limb, the scenario that
// motivated using an incrementing limb index in the carry-flush loop.
func TestMulU32CarryChainLongerThanOneLimb(t *testing.T) {
	a := New()
	// 2^93 - 1: three all-ones limbs, so the final carry is close to 2^32
	// and needs two extra limbs.
	a.SetString("9903520314283042199192993791")

	rop := New()
	rop.MulU32(a, 4294967295)

	wa, _ := new(big.Int).SetString("9903520314283042199192993791", 10)
	want := new(big.Int).Mul(wa, big.NewInt(4294967295))

	if got := rop.String(); got != want.String() {
		t.Errorf("MulU32 long carry chain = %s, want %s", got, want.String())
	}
}
