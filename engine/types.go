package engine

import (
	"github.com/samber/lo"

	"github.com/MeKo-Tech/dfft2d/grid"
)

// RowTile is the locally owned subset of rows of the global matrix. Each
// row is Ny+2 reals: the first Ny hold real samples, and after the local
// R2C stage the same storage holds Cy complex128 values. The backing array
// is never reallocated between transforms — rows are views into one
// contiguous []float64.
//
// Row ownership is round-robin, not a contiguous block: a locality's local
// row i holds global row i*P + this_locality. The local C2C stage performs
// a single plain (non-twiddled) forward FFT across the row axis after the
// first transpose, which only computes the correct spectrum if the array
// position it sees equals the true physical row index — the round-robin
// assignment is what makes that hold for every locality, not just the
// distinguished root. Callers populating an input tile, and callers
// decoding the output tile's final complex slots back into frequency bins,
// must follow this same convention (see engine/engine_test.go for the
// exact inverse mapping used when checking results against a reference).
type RowTile struct {
	backing []float64
	rows    int
	rowLen  int // Ny + 2
}

// NewRowTile allocates a RowTile of rows rows, each rowLen reals.
func NewRowTile(rows, rowLen int) *RowTile {
	return &RowTile{
		backing: make([]float64, rows*rowLen),
		rows:    rows,
		rowLen:  rowLen,
	}
}

// NewRowTileFrom wraps caller-supplied storage without copying. data must
// have length rows*rowLen.
func NewRowTileFrom(data []float64, rows, rowLen int) (*RowTile, error) {
	if len(data) != rows*rowLen {
		return nil, &SizeError{Expected: rows * rowLen, Got: len(data), Context: "RowTile backing"}
	}

	return &RowTile{backing: data, rows: rows, rowLen: rowLen}, nil
}

// Rows returns the number of rows (nx_local).
func (t *RowTile) Rows() int { return t.rows }

// RowLen returns the per-row length in reals (Ny + 2).
func (t *RowTile) RowLen() int { return t.rowLen }

// Shape describes the tile's dimensions as (rows, rowLen).
func (t *RowTile) Shape() grid.Shape { return grid.NewShape2D(t.rows, t.rowLen) }

// Row returns a view of row i, shared with the tile's backing storage.
func (t *RowTile) Row(i int) []float64 {
	start := grid.Index2D(i, 0, t.rowLen)
	return t.backing[start : start+t.rowLen]
}

// Clone copies the tile's contents into a fresh, independent RowTile —
// used by Execute to hand a result to the caller without surrendering the
// engine's own working storage (see the Execute/TakeResult split in
// engine.go).
func (t *RowTile) Clone() *RowTile {
	out := NewRowTile(t.rows, t.rowLen)
	copy(out.backing, t.backing)

	return out
}

// ColumnTile is the locally owned contiguous subset of rows of the
// logically transposed (post-first-FFT) matrix. Each row is 2*Cx reals
// (Cx complex128 values). It exists only between the two transposes.
type ColumnTile struct {
	backing []float64
	rows    int
	rowLen  int // 2 * Cx
}

// NewColumnTile allocates a ColumnTile of rows rows, each rowLen reals.
func NewColumnTile(rows, rowLen int) *ColumnTile {
	return &ColumnTile{
		backing: make([]float64, rows*rowLen),
		rows:    rows,
		rowLen:  rowLen,
	}
}

// Rows returns the number of rows (ny_local).
func (t *ColumnTile) Rows() int { return t.rows }

// RowLen returns the per-row length in reals (2 * Cx).
func (t *ColumnTile) RowLen() int { return t.rowLen }

// Shape describes the tile's dimensions as (rows, rowLen).
func (t *ColumnTile) Shape() grid.Shape { return grid.NewShape2D(t.rows, t.rowLen) }

// Row returns a view of row i, shared with the tile's backing storage.
func (t *ColumnTile) Row(i int) []float64 {
	start := grid.Index2D(i, 0, t.rowLen)
	return t.backing[start : start+t.rowLen]
}

// PackBufferSet is the reordering of a tile into P per-destination
// contiguous buffers ready for a collective (spec section 3). The set is
// backed by one contiguous array of length p*bufLen, split into p equal
// slices with lo.Chunk so resizing between packs is one reslice rather
// than p individual reallocations.
type PackBufferSet struct {
	backing []float64
	bufs    [][]float64
	bufLen  int
}

// NewPackBufferSet allocates a set of p buffers, each bufLen reals long.
func NewPackBufferSet(p, bufLen int) *PackBufferSet {
	backing := make([]float64, p*bufLen)
	bufs := lo.Chunk(backing, bufLen)

	return &PackBufferSet{backing: backing, bufs: bufs, bufLen: bufLen}
}

// Buffer returns buffer j, shared with the set's backing storage.
func (s *PackBufferSet) Buffer(j int) []float64 { return s.bufs[j] }

// Len returns the number of buffers (P).
func (s *PackBufferSet) Len() int { return len(s.bufs) }

// BufLen returns the length of each buffer in reals.
func (s *PackBufferSet) BufLen() int { return s.bufLen }

// Buffers returns every buffer in destination order, the shape a
// collective call expects as input.
func (s *PackBufferSet) Buffers() [][]float64 { return s.bufs }

// Reset restores every slot to its full expected capacity after a
// collective has consumed it (spec section 9, "pack-buffer reuse"). The
// backing array itself is never reallocated; this only re-derives the
// per-buffer views in case a transport truncated them.
func (s *PackBufferSet) Reset() {
	s.bufs = lo.Chunk(s.backing, s.bufLen)
}
