package numtheory

import "github.com/lookbusy1344/bignum/bignum"

// LucasLehmer reports whether the Mersenne number M_p = 2^p - 1 is
// prime, by iterating s <- (s*s - 2) mod M_p starting from s = 4 for
// p-2 rounds; M_p is prime iff the final s is zero, the standard
// Lucas-Lehmer primality test. p must be at least 2; p == 2 is the base
// case (M_2 = 3, prime by inspection, zero Lucas-Lehmer rounds).
//
// Built from Mul (s*s), SubU32 (the -2 term, adding the modulus back in
// first on the rare residue that would otherwise underflow), and
// FdivR2Exp/FdivQ2Exp for the Mersenne-number reduction: since
// M_p = 2^p - 1, x mod M_p equals (x & (2^p-1)) + (x >> p), repeated
// until the result fits in p bits.
func LucasLehmer(p uint32) bool {
	if p == 2 {
		return true
	}
	if p < 2 {
		return false
	}

	mp := bignum.New()
	mp.UiPowU32(2, p)
	mp.SubU32(mp, 1)

	s := bignum.New()
	s.SetU32(4)

	for round := uint32(0); round < p-2; round++ {
		s.Mul(s, s)
		s = modMersenne(s, p, mp)

		// s is now a residue mod M_p; subtracting 2 could underflow if
		// that residue is 0 or 1, so add the modulus first rather than
		// subtracting directly; s + M_p - 2 is then already below M_p.
		if s.CmpU32(2) < 0 {
			s.Add(s, mp)
		}
		s.SubU32(s, 2)
	}

	return s.CmpU32(0) == 0
}

// modMersenne reduces n modulo M_p = 2^p - 1 using the Mersenne folding
// identity x = (x & (2^p-1)) + (x >> p), repeated until the result is
// less than 2^p (at most one extra fold, since x < (2^p-1)^2 bounds the
// first fold's sum below 2^(p+1)).
func modMersenne(n *bignum.BigUInt, p uint32, mp *bignum.BigUInt) *bignum.BigUInt {
	for n.SizeInBase2() > uint(p) {
		low := bignum.New()
		low.FdivR2Exp(n, uint(p))

		high := bignum.New()
		high.FdivQ2Exp(n, uint(p))

		n = bignum.New()
		n.Add(low, high)
	}

	if n.Cmp(mp) == 0 {
		n = bignum.New()
	}

	return n
}
