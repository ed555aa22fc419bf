package engine

import "github.com/MeKo-Tech/dfft2d/fftbackend"

// fftRowR2C runs the prepared R2C plan in place on row i of the row-tile,
// treating the row's buffer as input reals and as output complex values
// sharing the same storage. Precondition: i < nx_local.
func fftRowR2C(plan fftbackend.R2CPlan, tile *RowTile, i int) error {
	return plan.ExecuteInPlace(tile.Row(i))
}

// fftRowC2C runs the prepared forward C2C plan in place on row i of the
// column-tile.
func fftRowC2C(plan fftbackend.C2CPlan, tile *ColumnTile, i int) error {
	return plan.ExecuteInPlace(tile.Row(i))
}
