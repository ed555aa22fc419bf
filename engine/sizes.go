package engine

// sizes holds every derived dimension in spec section 3's symbol table,
// computed once at initialization and held fixed for the engine's lifetime.
type sizes struct {
	p  int // number of localities
	nx int // global real row count
	ny int // global real column count

	cy int // Ny/2 + 1, complex row length after R2C
	cx int // Nx, complex column count after second FFT

	nxLocal int // Nx / P, rows owned per locality
	nyLocal int // Cy / P, transposed-domain rows owned per locality

	chunkY int // 2*Cy / P, reals per pack chunk on Y-split
	chunkX int // 2*Cx / P, reals per pack chunk on X-split
}

// computeSizes derives every symbol in the data model from (nx, ny, p) and
// enforces the divisibility invariants in spec section 3: Nx mod P == 0 and
// Cy mod P == 0.
func computeSizes(nx, ny, p int) (sizes, error) {
	if nx <= 0 || ny <= 0 || p <= 0 {
		return sizes{}, ErrInvalidSize
	}

	if ny%2 != 0 {
		return sizes{}, ErrInvalidSize
	}

	if nx%p != 0 {
		return sizes{}, ErrInvalidSize
	}

	cy := ny/2 + 1
	if cy%p != 0 {
		return sizes{}, ErrInvalidSize
	}

	cx := nx

	s := sizes{
		p:       p,
		nx:      nx,
		ny:      ny,
		cy:      cy,
		cx:      cx,
		nxLocal: nx / p,
		nyLocal: cy / p,
		chunkY:  2 * cy / p,
		chunkX:  2 * cx / p,
	}

	return s, nil
}
