// Package bignum implements an arbitrary-precision non-negative integer,
// built on 31-bit limbs the way github.com/xbarin02/mpi represents its
// mpi_t: the top bit of every storage word is scratch space reserved for
// carry capture during addition and borrow capture during subtraction,
// and must be zero on entry to and exit from every exported operation.
package bignum

const (
	limbBits = 31
	limbMask = uint32(1)<<limbBits - 1
)

// BigUInt is a non-negative integer of arbitrary size, represented as an
// ordered sequence of 31-bit limbs, least-significant first. The integer's
// value is the sum over i in [0, len(data)) of data[i] * 2^(31*i).
//
// The zero value is ready to use and represents zero: no separate Init
// call is required in Go, unlike the C original's mpi_init/mpi_clear
// lifecycle. Init and Clear are kept for API parity with that lifecycle
// and for callers that want to reuse a value explicitly.
type BigUInt struct {
	data []uint32 // limb i holds a value in [0, 2^31); len(data) is nmemb
}

// New returns a BigUInt initialized to zero.
func New() *BigUInt {
	return &BigUInt{}
}

// Init resets rop to zero, discarding any limb storage. It mirrors
// mpi_init for callers migrating code that explicitly initializes values
// before first use.
func (rop *BigUInt) Init() {
	rop.data = nil
}

// Clear releases rop's limb storage and resets it to zero. Go's garbage
// collector reclaims the backing array; Clear exists so mpi_clear's
// explicit lifecycle has a direct counterpart.
func (rop *BigUInt) Clear() {
	rop.data = nil
}

// Swap exchanges the limb buffers of rop1 and rop2 in O(1) without
// reallocating or copying limbs.
func Swap(rop1, rop2 *BigUInt) {
	rop1.data, rop2.data = rop2.data, rop1.data
}

// nmemb returns the logical limb count, mirroring mpi_t's nmemb field:
// an upper bound on significant limbs, not necessarily tight.
func (rop *BigUInt) nmemb() int {
	return len(rop.data)
}

// IsZero reports whether op represents zero: both an empty buffer and
// an all-zero buffer represent zero.
func (op *BigUInt) IsZero() bool {
	for _, w := range op.data {
		if w != 0 {
			return false
		}
	}
	return true
}
