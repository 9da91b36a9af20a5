package numtheory_test

import (
	"math/rand"
	"testing"

	"github.com/lookbusy1344/bignum/bignum"
	"github.com/lookbusy1344/bignum/numtheory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollatzMaxKnownSeed(t *testing.T) {
	seed := bignum.New()
	seed.SetString("274133054632352106267")

	max := numtheory.CollatzMax(seed)

	require.Equal(t, "56649062372194325899121269007146717645316", max.String())
}

func TestCollatzMaxSmallSeeds(t *testing.T) {
	tests := []struct {
		seed uint32
		want uint32
	}{
		{1, 1},
		{2, 2},
		{6, 8}, // 6 -> 3 -> 5 -> 8 -> 4 -> 2 -> 1
		{27, 4616},
	}

	for _, tt := range tests {
		seed := bignum.New()
		seed.SetU32(tt.seed)

		got := numtheory.CollatzMax(seed)
		assert.Equal(t, tt.want, got.GetU32(), "CollatzMax(%d)", tt.seed)
	}
}

func TestCollatzMaxNeverBelowSeed(t *testing.T) {
	for seedVal := uint32(1); seedVal < 50; seedVal++ {
		seed := bignum.New()
		seed.SetU32(seedVal)

		max := numtheory.CollatzMax(seed)
		assert.True(t, max.CmpU32(seedVal) >= 0, "CollatzMax(%d) should be >= seed", seedVal)
	}
}

func TestCollatzStepsAgreesWithCollatzMax(t *testing.T) {
	seed := bignum.New()
	seed.SetU32(27)

	steps, max := numtheory.CollatzSteps(seed)

	want := numtheory.CollatzMax(seed)
	require.Equal(t, want.String(), max.String())
	assert.Equal(t, uint64(70), steps)
}

func TestLucasLehmerKnownValues(t *testing.T) {
	assert.True(t, numtheory.LucasLehmer(2))
	assert.True(t, numtheory.LucasLehmer(3))
	assert.True(t, numtheory.LucasLehmer(5))
	assert.True(t, numtheory.LucasLehmer(7))
	assert.True(t, numtheory.LucasLehmer(17))
	assert.False(t, numtheory.LucasLehmer(11))
}

func TestRandomSelfCheckPasses(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	err := numtheory.RandomSelfCheck(200, rng)
	require.NoError(t, err)
}
