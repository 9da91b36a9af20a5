package bignum

import "math"

// NotFound is the sentinel Scan1 returns when no set bit exists at or
// after the requested starting position, mirroring mpi_scan1's
// ULONG_MAX return for "not found": the maximum value of the bit-count
// type.
const NotFound = uint(math.MaxUint)

// Tstbit returns bit b of op (bit b%31 of limb b/31), or 0 past the end
// of the buffer.
func (op *BigUInt) Tstbit(b uint) int {
	word := int(b / limbBits)
	bit := b % limbBits
	r := op.limbAt(word)
	return int((r >> bit) & 1)
}

// Setbit sets bit b of rop, enlarging the buffer as needed to hold it.
func (rop *BigUInt) Setbit(b uint) {
	word := int(b / limbBits)
	bit := b % limbBits
	rop.enlarge(word + 1)
	rop.data[word] |= uint32(1) << bit
}

// Scan1 returns the index of the lowest set bit at position >= start, or
// NotFound if no such bit exists.
func (op *BigUInt) Scan1(start uint) uint {
	bits := uint(limbBits * len(op.data))
	for i := start; i < bits; i++ {
		if op.Tstbit(i) == 1 {
			return i
		}
	}
	return NotFound
}

// SizeInBase2 returns the index of the highest set bit plus one, or zero
// if op is zero.
func (op *BigUInt) SizeInBase2() uint {
	for i := len(op.data) - 1; i >= 0; i-- {
		if op.data[i] != 0 {
			for b := limbBits - 1; b >= 0; b-- {
				if op.data[i]&(uint32(1)<<uint(b)) != 0 {
					return uint(limbBits*i + b + 1)
				}
			}
		}
	}
	return 0
}

// OddP reports whether op is odd: the low bit of the lowest limb, or
// false (even) if op has no limbs.
func (op *BigUInt) OddP() bool {
	if len(op.data) == 0 {
		return false
	}
	return op.data[0]&1 != 0
}

// EvenP reports whether op is even.
func (op *BigUInt) EvenP() bool {
	return !op.OddP()
}
