// Package fftbackend wraps a local 1D FFT library behind the plan
// contract the distributed engine needs: create an R2C plan of a given
// length, create a forward C2C plan of a given length, execute either
// in place without re-planning, and release them on teardown. This is
// the "pre-existing local 1D FFT kernel" external collaborator the
// spec assumes.
package fftbackend

import "fmt"

// PlanQuality mirrors the four well-known FFTW-style planning effort
// levels. It is forwarded to the backend planner verbatim; a backend
// that has no notion of planning effort (as is currently true of
// algo-fft's complex128 plans) records it but has no effect — that is
// documented here rather than silently dropped.
type PlanQuality int

const (
	Estimate PlanQuality = iota
	Measure
	Patient
	Exhaustive
)

// String implements fmt.Stringer.
func (q PlanQuality) String() string {
	switch q {
	case Estimate:
		return "estimate"
	case Measure:
		return "measure"
	case Patient:
		return "patient"
	case Exhaustive:
		return "exhaustive"
	default:
		return fmt.Sprintf("PlanQuality(%d)", int(q))
	}
}

// ParsePlanQuality parses the configuration-enumeration spelling of a
// plan_quality value.
func ParsePlanQuality(s string) (PlanQuality, error) {
	switch s {
	case "estimate":
		return Estimate, nil
	case "measure":
		return Measure, nil
	case "patient":
		return Patient, nil
	case "exhaustive":
		return Exhaustive, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlanQuality, s)
	}
}

// R2CPlan executes a real-to-complex transform in place on a row whose
// storage is Ny+2 float64s: the first Ny hold the real input, and after
// ExecuteInPlace the same bytes hold Cy=Ny/2+1 complex128 values.
type R2CPlan interface {
	// Len returns Ny, the real transform length.
	Len() int

	// ExecuteInPlace runs the plan on row, which must have length
	// exactly Len()+2.
	ExecuteInPlace(row []float64) error
}

// C2CPlan executes a forward complex-to-complex transform in place on a
// row of Cx complex128 values addressed as 2*Cx float64s.
type C2CPlan interface {
	// Len returns Cx, the complex transform length.
	Len() int

	// ExecuteInPlace runs the plan on row, which must have length
	// exactly 2*Len() float64s (Len() complex128 values).
	ExecuteInPlace(row []float64) error
}

// Backend is the local FFT backend contract: create plans, run them,
// release them, and a final process-wide cleanup call on teardown.
type Backend interface {
	NewR2CPlan(ny int, quality PlanQuality) (R2CPlan, error)
	NewC2CPlan(cx int, quality PlanQuality) (C2CPlan, error)
	Cleanup()
}
