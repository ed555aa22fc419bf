package engine

import "math"

// referenceR2C computes the serial 2D real-to-complex DFT directly by
// double summation: reference[x][ky] = sum_{a,b} input[a][b] *
// exp(-2*pi*i*(x*a/Nx + ky*b/Ny)), restricted to the non-redundant
// ky in [0, Ny/2]. It exists purely as an independent oracle for the
// engine's distributed result and is never used by the engine itself.
func referenceR2C(input [][]float64) [][]complex128 {
	nx := len(input)
	ny := len(input[0])
	cy := ny/2 + 1

	out := make([][]complex128, nx)

	for kx := 0; kx < nx; kx++ {
		out[kx] = make([]complex128, cy)

		for ky := 0; ky < cy; ky++ {
			var acc complex128

			for x := 0; x < nx; x++ {
				for y := 0; y < ny; y++ {
					angle := -2 * math.Pi * (float64(kx*x)/float64(nx) + float64(ky*y)/float64(ny))
					acc += complex(input[x][y], 0) * complex(math.Cos(angle), math.Sin(angle))
				}
			}

			out[kx][ky] = acc
		}
	}

	return out
}
