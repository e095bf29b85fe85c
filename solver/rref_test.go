package solver

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rat(num, den int64) *big.Rat {
	return big.NewRat(num, den)
}

func TestEchelonIdentity(t *testing.T) {
	ech, ok := newEchelon([][]uint8{{1, 0}, {0, 1}}, []uint64{4, 7})
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, ech.pivots)
	assert.Empty(t, ech.free)
	assert.Zero(t, ech.rhs[0].Cmp(rat(4, 1)))
	assert.Zero(t, ech.rhs[1].Cmp(rat(7, 1)))
}

func TestEchelonFreeColumn(t *testing.T) {
	// x0 + x1 = 5, x1 + x2 = 3. Eliminating x1 from the first row leaves
	// x0 - x2 = 2, so x2 is the free unknown.
	ech, ok := newEchelon([][]uint8{{1, 1, 0}, {0, 1, 1}}, []uint64{5, 3})
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, ech.pivots)
	assert.Equal(t, []int{2}, ech.free)
	assert.Zero(t, ech.coefs[0][2].Cmp(rat(-1, 1)))
	assert.Zero(t, ech.rhs[0].Cmp(rat(2, 1)))
	assert.Zero(t, ech.coefs[1][2].Cmp(rat(1, 1)))
	assert.Zero(t, ech.rhs[1].Cmp(rat(3, 1)))
}

func TestEchelonInconsistent(t *testing.T) {
	_, ok := newEchelon([][]uint8{{1, 1}, {1, 1}}, []uint64{2, 3})
	assert.False(t, ok)
}

func TestEchelonRedundantRowTruncated(t *testing.T) {
	ech, ok := newEchelon([][]uint8{{1, 1}, {1, 1}}, []uint64{2, 2})
	require.True(t, ok)
	require.Len(t, ech.coefs, 1)
	assert.Equal(t, []int{0}, ech.pivots)
	assert.Equal(t, []int{1}, ech.free)
	assert.Zero(t, ech.rhs[0].Cmp(rat(2, 1)))
}

func TestEchelonZeroColumnIsFree(t *testing.T) {
	ech, ok := newEchelon([][]uint8{{1, 0}}, []uint64{2})
	require.True(t, ok)
	assert.Equal(t, []int{0}, ech.pivots)
	assert.Equal(t, []int{1}, ech.free)
}

func TestEchelonFractionalElimination(t *testing.T) {
	// The circulant system x0+x2, x0+x1, x1+x2 has determinant 2: solving it
	// for an all-ones target yields 1/2 per unknown, which must survive
	// exactly rather than being rounded.
	ech, ok := newEchelon([][]uint8{{1, 0, 1}, {1, 1, 0}, {0, 1, 1}}, []uint64{1, 1, 1})
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, ech.pivots)
	assert.Empty(t, ech.free)
	for i := range ech.rhs {
		assert.Zero(t, ech.rhs[i].Cmp(rat(1, 2)), "rhs[%d] = %v", i, ech.rhs[i])
	}
}

func TestEchelonEmpty(t *testing.T) {
	ech, ok := newEchelon(nil, nil)
	require.True(t, ok)
	assert.Empty(t, ech.pivots)
	assert.Empty(t, ech.free)
}
