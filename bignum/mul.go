package bignum

// karatsubaCutoff is the limb count below which Karatsuba recursion
// falls through to schoolbook multiplication; defaults to xbarin02/mpi's
// cutoff of 32 limbs, but is overridable at runtime via
// SetKaratsubaCutoff.
var karatsubaCutoff = 32

// SetKaratsubaCutoff overrides the limb count below which Mul falls
// through to schoolbook multiplication. Values below 2 are ignored,
// since Karatsuba's halving step requires at least two limbs per
// operand to make progress.
func SetKaratsubaCutoff(limbs int) {
	if limbs < 2 {
		return
	}
	karatsubaCutoff = limbs
}

// KaratsubaCutoff returns the limb count currently in effect.
func KaratsubaCutoff() int {
	return karatsubaCutoff
}

// mulNaive computes rop = op1 * op2 by schoolbook multiplication: for
// each pair of limb indices (n, m), the 62-bit product op1[n]*op2[m] is
// added into a temporary accumulator starting at index n+m, propagating
// carries limb by limb until both the injected product and the carry
// are exhausted, mirroring mpi_mul's schoolbook path. A temporary is
// required because rop may alias either operand.
func mulNaive(rop, op1, op2 *BigUInt) *BigUInt {
	tmp := &BigUInt{}
	tmp.enlarge(len(op1.data) + len(op2.data))

	for n := 0; n < len(op1.data); n++ {
		for m := 0; m < len(op2.data); m++ {
			r := uint64(op1.data[n]) * uint64(op2.data[m])
			var c uint64
			for k := m + n; c != 0 || r != 0; k++ {
				if k >= len(tmp.data) {
					tmp.enlarge(len(tmp.data) + 1)
				}
				tmp.data[k] += uint32(r&uint64(limbMask)) + uint32(c)
				r >>= limbBits
				c = uint64(tmp.data[k] >> limbBits)
				tmp.data[k] &= limbMask
			}
		}
	}

	rop.Set(tmp)
	rop.compact()
	return rop
}

// mulKaratsuba computes rop = op1 * op2 using Karatsuba's divide-and-
// conquer scheme, mirroring mpi_mul_karatsuba: recursing on limb halves
// split at the bit boundary 31*m, and falling through to schoolbook
// multiplication below karatsubaCutoff limbs.
func mulKaratsuba(rop, op1, op2 *BigUInt) *BigUInt {
	if len(op1.data) < karatsubaCutoff || len(op2.data) < karatsubaCutoff {
		trace(TraceMulDispatch, "naive")
		return mulNaive(rop, op1, op2)
	}
	trace(TraceMulDispatch, "karatsuba")

	nmemb := len(op1.data)
	if len(op2.data) > nmemb {
		nmemb = len(op2.data)
	}
	m := nmemb / 2
	splitBit := uint(limbBits * m)

	x0, x1 := &BigUInt{}, &BigUInt{}
	y0, y1 := &BigUInt{}, &BigUInt{}
	x0.FdivR2Exp(op1, splitBit)
	x1.FdivQ2Exp(op1, splitBit)
	y0.FdivR2Exp(op2, splitBit)
	y1.FdivQ2Exp(op2, splitBit)

	z0, z1, z2 := &BigUInt{}, &BigUInt{}, &BigUInt{}
	mulKaratsuba(z2, x1, y1)
	mulKaratsuba(z0, x0, y0)

	w0, w1 := &BigUInt{}, &BigUInt{}
	w0.Add(x0, x1)
	w1.Add(y0, y1)

	mulKaratsuba(z1, w0, w1)
	z1.Sub(z1, z2)
	z1.Sub(z1, z0)

	z2.Mul2Exp(z2, limbBits*2*uint(m))
	z1.Mul2Exp(z1, limbBits*uint(m))

	rop.Add(z0, z1)
	rop.Add(rop, z2)

	rop.compact()
	return rop
}

// Mul sets rop = op1 * op2 using Karatsuba recursion, the public
// entry point mirroring mpi_mul.
func (rop *BigUInt) Mul(op1, op2 *BigUInt) *BigUInt {
	return mulKaratsuba(rop, op1, op2)
}

// MulU32 sets rop = op1 * op2, where op2 is a 32-bit scalar.
func (rop *BigUInt) MulU32(op1 *BigUInt, op2 uint32) *BigUInt {
	nmemb := len(op1.data) + 1
	rop.enlarge(nmemb)

	var c uint64
	for n := 0; n < len(op1.data); n++ {
		r := uint64(op1.data[n])*uint64(op2) + c
		rop.data[n] = uint32(r & uint64(limbMask))
		c = r >> limbBits
	}

	idx := len(op1.data)
	for c != 0 {
		if idx >= len(rop.data) {
			rop.enlarge(idx + 1)
		}
		rop.data[idx] = uint32(c & uint64(limbMask))
		c >>= limbBits
		idx++
	}

	rop.compact()
	return rop
}
