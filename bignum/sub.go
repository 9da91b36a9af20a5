package bignum

// Sub sets rop = op1 - op2. Subtraction is total only over non-negative
// results: a borrow remaining after the top limb signals a
// would-be-negative result, which mpi_sub treats as a fatal contract
// violation. It aborts the process rather than returning an error,
// since this library has no recoverable error channel on arithmetic
// operations. rop may alias op1, op2, or both, by the same
// read-before-write discipline as Add.
func (rop *BigUInt) Sub(op1, op2 *BigUInt) *BigUInt {
	nmemb := len(op1.data)
	if len(op2.data) > nmemb {
		nmemb = len(op2.data)
	}

	rop.enlarge(nmemb)

	var borrow uint32
	for n := 0; n < len(rop.data); n++ {
		r1 := op1.limbAt(n)
		r2 := op2.limbAt(n)
		s := r1 - r2 - borrow
		rop.data[n] = s & limbMask
		borrow = s >> limbBits
	}

	if borrow != 0 {
		abortf(NegativeResult, "subtraction produced a negative result")
		return rop
	}

	rop.compact()
	return rop
}

// SubU32 sets rop = op1 - op2, where op2 is a 32-bit scalar.
func (rop *BigUInt) SubU32(op1 *BigUInt, op2 uint32) *BigUInt {
	nmemb := len(op1.data)
	if u32Limbs > nmemb {
		nmemb = u32Limbs
	}

	rop.enlarge(nmemb)

	var borrow uint32
	scalar := op2
	for n := 0; n < len(rop.data); n++ {
		r1 := op1.limbAt(n)
		r2 := scalar & limbMask
		scalar >>= limbBits
		s := r1 - r2 - borrow
		rop.data[n] = s & limbMask
		borrow = s >> limbBits
	}

	if borrow != 0 {
		abortf(NegativeResult, "subtraction produced a negative result")
	}

	return rop
}

// SubU64 sets rop = op1 - op2, where op2 is a 64-bit scalar.
func (rop *BigUInt) SubU64(op1 *BigUInt, op2 uint64) *BigUInt {
	nmemb := len(op1.data)
	if u64Limbs > nmemb {
		nmemb = u64Limbs
	}

	rop.enlarge(nmemb)

	var borrow uint32
	scalar := op2
	for n := 0; n < len(rop.data); n++ {
		r1 := op1.limbAt(n)
		r2 := uint32(scalar & uint64(limbMask))
		scalar >>= limbBits
		s := r1 - r2 - borrow
		rop.data[n] = s & limbMask
		borrow = s >> limbBits
	}

	if borrow != 0 {
		abortf(NegativeResult, "subtraction produced a negative result")
	}

	return rop
}
