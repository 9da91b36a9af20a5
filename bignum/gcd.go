package bignum

// Gcd sets rop to the greatest common divisor of op1 and op2 using the
// Euclidean algorithm built on FdivQR. xbarin02/mpi's mpi_gcd defines
// gcd recursively; recursion risks stack exhaustion for very large
// inputs, so this implementation iterates instead, an explicit,
// intentional deviation rather than a straight port.
func Gcd(rop, op1, op2 *BigUInt) {
	a := &BigUInt{}
	a.Set(op1)
	b := &BigUInt{}
	b.Set(op2)

	for b.CmpU32(0) != 0 {
		q := &BigUInt{}
		r := &BigUInt{}
		FdivQR(q, r, a, b)
		a.Set(b)
		b.Set(r)
	}

	rop.Set(a)
}
