package fftbackend

import "fmt"

// r2cPlan implements R2CPlan by zero-extending the real row into a
// complex buffer of the same length, running a full forward complex
// FFT, and keeping only the first Cy=n/2+1 bins (the rest are the
// conjugate mirror of a real-valued input and are redundant). The
// result is written into row's own storage via complexView, so from
// the caller's perspective the row buffer really is transformed in
// place.
type r2cPlan struct {
	n       int
	cy      int
	quality PlanQuality
	fft     interface {
		Forward(dst, src []complex128) error
	}
	in, out []complex128
}

func (p *r2cPlan) Len() int { return p.n }

func (p *r2cPlan) ExecuteInPlace(row []float64) error {
	if len(row) != p.n+2 {
		return ErrSizeMismatch
	}

	for i := 0; i < p.n; i++ {
		p.in[i] = complex(row[i], 0)
	}

	if err := p.fft.Forward(p.out, p.in); err != nil {
		return fmt.Errorf("R2C forward: %w", err)
	}

	copy(complexView(row), p.out[:p.cy])

	return nil
}
