// Package dfft2d provides a distributed two-dimensional real-to-complex
// discrete Fourier transform over a row-partitioned matrix.
//
// A dense Nx x Ny real matrix is split row-wise across P cooperating
// localities. Each locality runs a forward 1D R2C transform on its own
// rows, the result is transposed across localities by a collective
// (scatter or all-to-all), each locality runs a forward 1D C2C transform
// on what are now its columns, and a second collective-driven transpose
// returns the spectrum to the original row-wise distribution.
//
// # Architecture
//
//   - fftbackend: wraps a local 1D FFT library (algo-fft) behind the
//     R2C/C2C plan contract the engine needs.
//   - locality: the communicator/collective-substrate contract, plus the
//     generation counter that disambiguates successive collectives on
//     the same communicator.
//   - inprocsub: an in-process, goroutine-and-channel implementation of
//     that contract, used by the tests.
//   - netsub: a real network implementation over WebSockets, for
//     actually distributed deployment.
//   - engine: the distributed transform itself — sizing, pack/unpack
//     index kernels, the task-parallel intra-locality scheduler, the
//     collective transpose driver, and the Engine lifecycle.
//   - config: functional-options configuration, plus a file/env loader.
//   - grid: shape/stride helpers shared by the row-tile and column-tile
//     layouts.
//
// # Example
//
//	eng, err := engine.New(input, nx, ny,
//	    config.WithCommScheme(locality.SchemeAllToAll),
//	    config.WithWorld(world),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Destroy()
//
//	spectrum, err := eng.Execute(context.Background())
package dfft2d
