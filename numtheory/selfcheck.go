package numtheory

import (
	"fmt"
	"math/rand"

	"github.com/lookbusy1344/bignum/bignum"
)

// RandomSelfCheck runs rounds randomized property checks against
// bignum's arithmetic, using rng for reproducible test fixtures, and
// returns the first violation found (nil if every round passes). A
// reusable driver: cmd/bignumctl's selfcheck subcommand and this
// package's own TestRandomSelfCheckPasses both call it.
//
// Each round draws two random operands of random bit length and checks:
//   - a + b - b == a (additive inverse via Sub)
//   - a * b / b == a when b != 0 (multiplicative inverse via FdivQR)
//   - a + b == b + a (commutativity, via independently constructed sums)
//   - gcd(a, b) divides both a and b
func RandomSelfCheck(rounds int, rng *rand.Rand) error {
	for round := 0; round < rounds; round++ {
		a := randomBigUInt(rng, 1+rng.Intn(256))
		b := randomBigUInt(rng, 1+rng.Intn(256))

		if err := checkAddSubRoundTrip(a, b); err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
		if err := checkAddCommutes(a, b); err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
		if !b.IsZero() {
			if err := checkMulDivRoundTrip(a, b); err != nil {
				return fmt.Errorf("round %d: %w", round, err)
			}
		}
		if err := checkGcdDividesBoth(a, b); err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
	}
	return nil
}

func checkAddSubRoundTrip(a, b *bignum.BigUInt) error {
	sum := bignum.New()
	sum.Add(a, b)
	back := bignum.New()
	back.Sub(sum, b)
	if back.Cmp(a) != 0 {
		return fmt.Errorf("(a + b) - b != a: a=%s b=%s got=%s", a, b, back)
	}
	return nil
}

func checkAddCommutes(a, b *bignum.BigUInt) error {
	ab := bignum.New()
	ab.Add(a, b)
	ba := bignum.New()
	ba.Add(b, a)
	if ab.Cmp(ba) != 0 {
		return fmt.Errorf("a + b != b + a: a=%s b=%s", a, b)
	}
	return nil
}

func checkMulDivRoundTrip(a, b *bignum.BigUInt) error {
	product := bignum.New()
	product.Mul(a, b)
	q, r := bignum.New(), bignum.New()
	bignum.FdivQR(q, r, product, b)
	if q.Cmp(a) != 0 {
		return fmt.Errorf("(a * b) / b != a: a=%s b=%s got=%s", a, b, q)
	}
	if !r.IsZero() {
		return fmt.Errorf("(a * b) %% b != 0: a=%s b=%s remainder=%s", a, b, r)
	}
	return nil
}

func checkGcdDividesBoth(a, b *bignum.BigUInt) error {
	if a.IsZero() && b.IsZero() {
		return nil
	}
	g := bignum.New()
	bignum.Gcd(g, a, b)
	if g.IsZero() {
		return fmt.Errorf("gcd(a, b) == 0 for non-zero operands: a=%s b=%s", a, b)
	}

	q, r := bignum.New(), bignum.New()
	if !a.IsZero() {
		bignum.FdivQR(q, r, a, g)
		if !r.IsZero() {
			return fmt.Errorf("gcd %s does not divide a=%s", g, a)
		}
	}
	if !b.IsZero() {
		bignum.FdivQR(q, r, b, g)
		if !r.IsZero() {
			return fmt.Errorf("gcd %s does not divide b=%s", g, b)
		}
	}
	return nil
}

// randomBigUInt returns a random non-negative integer with up to bits
// significant bits, built one bit at a time via Setbit so the
// construction exercises the same primitives being tested.
func randomBigUInt(rng *rand.Rand, bits int) *bignum.BigUInt {
	n := bignum.New()
	for i := 0; i < bits; i++ {
		if rng.Intn(2) == 1 {
			n.Setbit(uint(i))
		}
	}
	return n
}
