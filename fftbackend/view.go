package fftbackend

import "unsafe"

// complexView reinterprets a []float64 of length 2*n as a []complex128
// of length n, aliasing the same underlying array. This is the literal
// mechanism behind the row-tile's "shares the same storage" contract:
// the first Ny float64s of a Ny+2-long row are real input, and after a
// forward R2C transform the same Ny+2 float64s (= 2*Cy float64s) are
// Cy complex128 output values.
//
// Grounded on the same unsafe-reinterpret idiom used for SIMD lane
// reinterpretation elsewhere in the corpus (hwy/memory.go); here it is
// used for the real/complex aliasing the FFT data model requires rather
// than for vector widths.
func complexView(reals []float64) []complex128 {
	if len(reals)%2 != 0 {
		panic("fftbackend: complexView requires an even-length buffer")
	}

	if len(reals) == 0 {
		return nil
	}

	return unsafe.Slice((*complex128)(unsafe.Pointer(&reals[0])), len(reals)/2)
}
