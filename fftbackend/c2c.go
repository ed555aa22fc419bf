package fftbackend

import "fmt"

// c2cPlan implements C2CPlan. For power-of-two lengths it calls the
// backing plan's in-place TransformStrided directly, passing the same
// slice as both destination and source; for other lengths (algo-fft's
// in-place path is unreliable off the power-of-two fast path) it
// round-trips through two scratch buffers.
type c2cPlan struct {
	n       int
	quality PlanQuality
	fft     interface {
		Forward(dst, src []complex128) error
		TransformStrided(dst, src []complex128, stride int, inverse bool) error
	}
	scratchA, scratchB []complex128
}

func (p *c2cPlan) Len() int { return p.n }

func (p *c2cPlan) ExecuteInPlace(row []float64) error {
	if len(row) != 2*p.n {
		return ErrSizeMismatch
	}

	line := complexView(row)

	if isPowerOfTwo(p.n) {
		if err := p.fft.TransformStrided(line, line, 1, false); err != nil {
			return fmt.Errorf("C2C in-place transform: %w", err)
		}

		return nil
	}

	copy(p.scratchA, line)

	if err := p.fft.Forward(p.scratchB, p.scratchA); err != nil {
		return fmt.Errorf("C2C forward: %w", err)
	}

	copy(line, p.scratchB)

	return nil
}
