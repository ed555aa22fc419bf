package fftbackend

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// AlgoFFTBackend is the Backend implementation built on algo-fft.
// algo-fft's Plan[complex128] offers Forward/Inverse on distinct
// buffers and an in-place TransformStrided; there is no native
// real-to-complex plan in the observed surface, so AlgoFFTBackend
// builds R2C on top of a complex plan of the same length (see r2c.go).
type AlgoFFTBackend struct{}

// NewAlgoFFTBackend creates a Backend backed by algo-fft.
func NewAlgoFFTBackend() *AlgoFFTBackend {
	return &AlgoFFTBackend{}
}

func (b *AlgoFFTBackend) NewR2CPlan(ny int, quality PlanQuality) (R2CPlan, error) {
	if ny < 1 || ny%2 != 0 {
		return nil, ErrInvalidSize
	}

	cplan, err := algofft.NewPlan64(ny)
	if err != nil {
		return nil, fmt.Errorf("creating R2C backing plan: %w", err)
	}

	return &r2cPlan{
		n:       ny,
		cy:      ny/2 + 1,
		quality: quality,
		fft:     cplan,
		in:      make([]complex128, ny),
		out:     make([]complex128, ny),
	}, nil
}

func (b *AlgoFFTBackend) NewC2CPlan(cx int, quality PlanQuality) (C2CPlan, error) {
	if cx < 1 {
		return nil, ErrInvalidSize
	}

	cplan, err := algofft.NewPlan64(cx)
	if err != nil {
		return nil, fmt.Errorf("creating C2C plan: %w", err)
	}

	return &c2cPlan{
		n:        cx,
		quality:  quality,
		fft:      cplan,
		scratchA: make([]complex128, cx),
		scratchB: make([]complex128, cx),
	}, nil
}

// Cleanup releases any process-wide backend state. algo-fft's plans are
// self-contained (no global planner cache to flush), so this is a no-op
// kept for symmetry with the backend contract and so a future backend
// swap has somewhere to put real cleanup.
func (b *AlgoFFTBackend) Cleanup() {}

func isPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
