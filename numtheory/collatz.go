// Package numtheory implements number-theoretic workloads that push
// the bignum core through large operand sizes: the Collatz trajectory
// maximum and the Lucas-Lehmer primality test, plus a randomized
// self-check that exercises bignum's arithmetic contracts against a
// trusted oracle.
package numtheory

import "github.com/lookbusy1344/bignum/bignum"

// CollatzMax runs the shortcut Collatz iteration (n -> n/2 if even,
// n -> (3n+1)/2 if odd, the odd step's guaranteed-even 3n+1 folded
// directly into the halving so each loop pass is a single atomic
// transition) starting from seed until it reaches one, and returns the
// largest value the trajectory visits. seed must be at least one; a
// seed of zero or one returns seed itself, since the trajectory
// starting there never exceeds it.
//
// Built entirely from core bignum primitives: OddP to branch,
// FdivQ2Exp(n, 1) for the halving step, MulU32(n, 3) and AddU32(n, 1)
// for the odd step, and Cmp to track the running maximum.
func CollatzMax(seed *bignum.BigUInt) *bignum.BigUInt {
	n := bignum.New()
	n.Set(seed)

	max := bignum.New()
	max.Set(seed)

	one := bignum.New()
	one.SetU32(1)

	if n.CmpU32(1) <= 0 {
		return max
	}

	for n.Cmp(one) != 0 {
		if n.OddP() {
			n.MulU32(n, 3)
			n.AddU32(n, 1)
		}
		n.FdivQ2Exp(n, 1)

		if n.Cmp(max) > 0 {
			max.Set(n)
		}
	}

	return max
}

// CollatzSteps reports how many iterations CollatzMax's loop performs
// before seed reaches one, alongside the trajectory maximum. The api
// job server and bignumctl's collatz subcommand report both values.
func CollatzSteps(seed *bignum.BigUInt) (steps uint64, max *bignum.BigUInt) {
	n := bignum.New()
	n.Set(seed)

	max = bignum.New()
	max.Set(seed)

	one := bignum.New()
	one.SetU32(1)

	if n.CmpU32(1) <= 0 {
		return 0, max
	}

	for n.Cmp(one) != 0 {
		if n.OddP() {
			n.MulU32(n, 3)
			n.AddU32(n, 1)
		}
		n.FdivQ2Exp(n, 1)
		steps++

		if n.Cmp(max) > 0 {
			max.Set(n)
		}
	}

	return steps, max
}
