package bignum

// FdivQR performs binary long division: sets q and r such that
// n = q*d + r with 0 <= r < d, by shifting r left one bit per remaining
// input bit, pulling in the next bit of n, and subtracting d whenever
// r has grown to at least d, mirroring xbarin02/mpi's mpi_fdiv_qr.
// d == 0 is a fatal contract violation. q and r may alias n or d; n and d are copied internally
// before q/r are reset to zero, so overwriting q or r mid-loop cannot
// corrupt the operands being divided.
func FdivQR(q, r, n, d *BigUInt) {
	if d.CmpU32(0) == 0 {
		abortf(DivideByZero, "division by zero")
		return
	}

	n0 := &BigUInt{}
	n0.Set(n)
	d0 := &BigUInt{}
	d0.Set(d)

	q.SetU32(0)
	r.SetU32(0)

	start := int(n0.SizeInBase2()) - 1

	for i := start; i >= 0; i-- {
		r.Mul2Exp(r, 1)
		if n0.Tstbit(uint(i)) != 0 {
			r.Setbit(0)
		}
		if r.Cmp(d0) >= 0 {
			r.Sub(r, d0)
			q.Setbit(uint(i))
		}
	}

	q.compact()
	r.compact()
}

// FdivQRU32 is FdivQR specialized to a 32-bit divisor, returning the
// final remainder as a uint32 in addition to storing it in r, mirroring
// xbarin02/mpi's mpi_fdiv_qr_u32.
func FdivQRU32(q, r *BigUInt, n *BigUInt, d uint32) uint32 {
	if d == 0 {
		abortf(DivideByZero, "division by zero")
		return 0
	}

	n0 := &BigUInt{}
	n0.Set(n)

	q.SetU32(0)
	r.SetU32(0)

	start := int(n0.SizeInBase2()) - 1

	for i := start; i >= 0; i-- {
		r.Mul2Exp(r, 1)
		if n0.Tstbit(uint(i)) != 0 {
			r.Setbit(0)
		}
		if r.CmpU32(d) >= 0 {
			r.SubU32(r, d)
			q.Setbit(uint(i))
		}
	}

	q.compact()
	r.compact()
	return r.GetU32()
}

// FdivU32 folds the bits of n from most significant to least,
// accumulating (r*2 + bit) mod d in a uint32, mirroring xbarin02/mpi's
// mpi_fdiv_u32. It is a
// cheaper single-limb-remainder alternative to FdivQRU32 when only the
// remainder is needed.
func (n *BigUInt) FdivU32(d uint32) uint32 {
	var r uint32
	for i := len(n.data) - 1; i >= 0; i-- {
		for b := limbBits - 1; b >= 0; b-- {
			bit := (n.data[i] >> uint(b)) & 1
			t := uint64(r)*2 + uint64(bit)
			if t >= uint64(d) {
				t -= uint64(d)
			}
			r = uint32(t)
		}
	}
	return r
}

// DivisibleU32P reports whether n is evenly divisible by d.
func (n *BigUInt) DivisibleU32P(d uint32) bool {
	return n.FdivU32(d) == 0
}
