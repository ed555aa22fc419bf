package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSizes_Valid(t *testing.T) {
	sz, err := computeSizes(8, 14, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, sz.p)
	assert.Equal(t, 8, sz.cy) // Ny/2+1 = 14/2+1 = 8
	assert.Equal(t, 8, sz.cx) // Cx = Nx
	assert.Equal(t, 4, sz.nxLocal)
	assert.Equal(t, 4, sz.nyLocal)
	assert.Equal(t, 8, sz.chunkY) // 2*Cy/P = 2*8/2
	assert.Equal(t, 8, sz.chunkX) // 2*Cx/P = 2*8/2
}

func TestComputeSizes_DivisibilityGuard(t *testing.T) {
	// scenario 6 from the testable-properties table: P=3, Nx=4, Ny=8 must fail.
	_, err := computeSizes(4, 8, 3)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestComputeSizes_CyNotDivisible(t *testing.T) {
	// Ny=4 -> Cy=3, not divisible by P=2.
	_, err := computeSizes(4, 4, 2)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestComputeSizes_AcceptsScenario5(t *testing.T) {
	// scenario 5: P=3, Nx=6, Ny=4: 6%3=0, Cy=3, 3%3=0.
	sz, err := computeSizes(6, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, sz.nxLocal)
	assert.Equal(t, 1, sz.nyLocal)
}

func TestComputeSizes_RejectsOddNy(t *testing.T) {
	_, err := computeSizes(4, 5, 1)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestComputeSizes_RejectsNonPositive(t *testing.T) {
	_, err := computeSizes(0, 8, 1)
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = computeSizes(8, 8, 0)
	require.ErrorIs(t, err, ErrInvalidSize)
}
