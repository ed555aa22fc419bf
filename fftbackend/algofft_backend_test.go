package fftbackend

import (
	"math"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cmplxAbs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

func TestNewR2CPlan_InvalidSize(t *testing.T) {
	b := NewAlgoFFTBackend()

	_, err := b.NewR2CPlan(0, Estimate)
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = b.NewR2CPlan(-4, Estimate)
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = b.NewR2CPlan(5, Estimate) // odd: R2C requires even length
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestNewC2CPlan_InvalidSize(t *testing.T) {
	b := NewAlgoFFTBackend()

	_, err := b.NewC2CPlan(0, Estimate)
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = b.NewC2CPlan(-1, Estimate)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestR2CPlan_ExecuteInPlace_SizeMismatch(t *testing.T) {
	b := NewAlgoFFTBackend()
	plan, err := b.NewR2CPlan(8, Estimate)
	require.NoError(t, err)

	err = plan.ExecuteInPlace(make([]float64, 8)) // must be n+2
	require.ErrorIs(t, err, ErrSizeMismatch)
}

func TestC2CPlan_ExecuteInPlace_SizeMismatch(t *testing.T) {
	b := NewAlgoFFTBackend()
	plan, err := b.NewC2CPlan(8, Estimate)
	require.NoError(t, err)

	err = plan.ExecuteInPlace(make([]float64, 8)) // must be 2*n
	require.ErrorIs(t, err, ErrSizeMismatch)
}

// TestR2CPlan_ExecuteInPlace_ConstantInput checks the well-known DFT of a
// constant real signal: all energy in bin 0, every other bin ~0.
func TestR2CPlan_ExecuteInPlace_ConstantInput(t *testing.T) {
	const n = 8

	b := NewAlgoFFTBackend()
	plan, err := b.NewR2CPlan(n, Estimate)
	require.NoError(t, err)

	row := make([]float64, n+2)
	for i := 0; i < n; i++ {
		row[i] = 3.0
	}

	require.NoError(t, plan.ExecuteInPlace(row))

	out := complexView(row)
	require.Len(t, out, n/2+1)
	assert.InDelta(t, float64(n)*3.0, real(out[0]), 1e-9)
	assert.InDelta(t, 0, imag(out[0]), 1e-9)

	for k := 1; k < len(out); k++ {
		assert.InDelta(t, 0, cmplxAbs(out[k]), 1e-9, "bin %d should be ~0", k)
	}
}

// TestR2CPlan_MatchesReferenceDFT compares against a direct-summation DFT
// restricted to the non-redundant bins 0..n/2.
func TestR2CPlan_MatchesReferenceDFT(t *testing.T) {
	const n = 16

	b := NewAlgoFFTBackend()
	plan, err := b.NewR2CPlan(n, Estimate)
	require.NoError(t, err)

	row := make([]float64, n+2)
	for i := 0; i < n; i++ {
		row[i] = math.Sin(2*math.Pi*float64(i)/float64(n)) + 0.5*float64(i%3)
	}

	want := make([]complex128, n/2+1)
	for k := 0; k <= n/2; k++ {
		var acc complex128
		for i := 0; i < n; i++ {
			angle := -2 * math.Pi * float64(k) * float64(i) / float64(n)
			acc += complex(row[i], 0) * complex(math.Cos(angle), math.Sin(angle))
		}
		want[k] = acc
	}

	require.NoError(t, plan.ExecuteInPlace(row))
	got := complexView(row)

	for k := range want {
		assert.InDelta(t, real(want[k]), real(got[k]), 1e-6, "bin %d real", k)
		assert.InDelta(t, imag(want[k]), imag(got[k]), 1e-6, "bin %d imag", k)
	}
}

// TestC2CPlan_PowerOfTwo_MatchesReference exercises the in-place
// TransformStrided fast path and checks it agrees with a directly
// constructed plan's forward transform.
func TestC2CPlan_PowerOfTwo_MatchesReference(t *testing.T) {
	const n = 16

	b := NewAlgoFFTBackend()
	plan, err := b.NewC2CPlan(n, Estimate)
	require.NoError(t, err)

	row := make([]float64, 2*n)
	original := make([]complex128, n)
	for i := 0; i < n; i++ {
		original[i] = complex(float64(i), float64(-i))
	}
	copy(complexView(row), original)

	require.NoError(t, plan.ExecuteInPlace(row))

	refPlan, err := algofft.NewPlan64(n)
	require.NoError(t, err)

	want := make([]complex128, n)
	require.NoError(t, refPlan.Forward(want, original))

	got := complexView(row)
	for i := range want {
		assert.InDelta(t, real(want[i]), real(got[i]), 1e-6, "index %d real", i)
		assert.InDelta(t, imag(want[i]), imag(got[i]), 1e-6, "index %d imag", i)
	}
}

// TestC2CPlan_NonPowerOfTwo_MatchesReference exercises the scratch-buffer
// fallback path and checks it agrees with a directly constructed plan.
func TestC2CPlan_NonPowerOfTwo_MatchesReference(t *testing.T) {
	const n = 12 // not a power of two

	b := NewAlgoFFTBackend()
	plan, err := b.NewC2CPlan(n, Estimate)
	require.NoError(t, err)

	row := make([]float64, 2*n)
	original := make([]complex128, n)
	for i := 0; i < n; i++ {
		original[i] = complex(float64(i%5), float64((i*3)%7))
	}
	copy(complexView(row), original)

	require.NoError(t, plan.ExecuteInPlace(row))

	refPlan, err := algofft.NewPlan64(n)
	require.NoError(t, err)

	want := make([]complex128, n)
	require.NoError(t, refPlan.Forward(want, original))

	got := complexView(row)
	for i := range want {
		assert.InDelta(t, real(want[i]), real(got[i]), 1e-6, "index %d real", i)
		assert.InDelta(t, imag(want[i]), imag(got[i]), 1e-6, "index %d imag", i)
	}
}

func TestComplexView_PanicsOnOddLength(t *testing.T) {
	assert.Panics(t, func() {
		complexView(make([]float64, 3))
	})
}

func TestComplexView_EmptyYieldsNil(t *testing.T) {
	assert.Nil(t, complexView(nil))
}

func TestPlanQuality_StringAndParse(t *testing.T) {
	for _, q := range []PlanQuality{Estimate, Measure, Patient, Exhaustive} {
		parsed, err := ParsePlanQuality(q.String())
		require.NoError(t, err)
		assert.Equal(t, q, parsed)
	}

	_, err := ParsePlanQuality("bogus")
	require.ErrorIs(t, err, ErrUnknownPlanQuality)
}
