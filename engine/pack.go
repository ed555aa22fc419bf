package engine

// splitY implements spec section 4.3's split_Y(i): for row i of the
// row-tile, copy chunk_y reals starting at offset j*chunk_y of that row
// into offset i*chunk_y of pack buffer Y[j], for every destination j.
func splitY(row []float64, i int, chunkY int, pack *PackBufferSet) {
	p := pack.Len()

	for j := 0; j < p; j++ {
		src := row[j*chunkY : j*chunkY+chunkY]
		dst := pack.Buffer(j)[i*chunkY : i*chunkY+chunkY]
		copy(dst, src)
	}
}

// splitX is the mirror of splitY operating on a column-tile row with
// chunk_x in place of chunk_y.
func splitX(row []float64, i int, chunkX int, pack *PackBufferSet) {
	p := pack.Len()

	for j := 0; j < p; j++ {
		src := row[j*chunkX : j*chunkX+chunkX]
		dst := pack.Buffer(j)[i*chunkX : i*chunkX+chunkX]
		copy(dst, src)
	}
}

// transposeYtoX implements spec section 4.3's transpose_Y_to_X(k, i).
// recv[i] is the receive-set buffer contributed by source i, logically
// nxLocal x chunkY reals; k selects the complex pair within each source
// chunk that belongs to output row k of the column-tile. The output
// stride along the fast axis is 2*P: one complex slot per source.
func transposeYtoX(trans *ColumnTile, k, i int, chunkY, nxLocal, p int, recvI []float64) {
	out := trans.Row(k)

	for jj := 0; jj < nxLocal; jj++ {
		out[2*p*jj+2*i] = recvI[chunkY*jj+2*k]
		out[2*p*jj+2*i+1] = recvI[chunkY*jj+2*k+1]
	}
}

// transposeXtoY mirrors transposeYtoX with chunk_x replacing chunk_y and
// the row-tile as destination, per spec section 4.3.
func transposeXtoY(row *RowTile, k, i int, chunkX, nyLocal, p int, recvI []float64) {
	out := row.Row(k)

	for jj := 0; jj < nyLocal; jj++ {
		out[2*p*jj+2*i] = recvI[chunkX*jj+2*k]
		out[2*p*jj+2*i+1] = recvI[chunkX*jj+2*k+1]
	}
}
