// Package engine implements the distributed 2D real-to-complex FFT
// pipeline: local R2C, pack-for-transpose, a collective global transpose,
// unpack, local C2C, and the mirror pack/transpose/unpack back to the
// original row-wise distribution.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/MeKo-Tech/dfft2d/config"
	"github.com/MeKo-Tech/dfft2d/fftbackend"
	"github.com/MeKo-Tech/dfft2d/grid"
	"github.com/MeKo-Tech/dfft2d/locality"
)

// Engine owns one locality's share of a distributed 2D R2C transform: its
// row-tile, its column-tile, both pack buffer sets, the local 1D plans,
// and the communicator handles that realize the two global transposes.
type Engine struct {
	sz        sizes
	opts      config.Options
	scheme    locality.CommScheme
	ex        locality.Exchanger
	thisSite  int

	mu         sync.Mutex
	tile       *RowTile
	colTile    *ColumnTile
	packY      *PackBufferSet
	packX      *PackBufferSet
	r2c        fftbackend.R2CPlan
	c2c        fftbackend.C2CPlan
	backend    fftbackend.Backend
	scatterComms []locality.Communicator
	a2aComm    locality.Communicator
	gen        locality.Generation
	destroyed  bool
}

// New implements the initialize operation: it takes ownership of input (a
// row-tile already populated with this locality's nx_local rows — see
// RowTile's doc comment for the round-robin row-ownership convention this
// assumes), reads P and this locality's identity from the World supplied
// via options, computes all derived sizes, allocates the transposed tile
// and both pack-buffer sets, creates the two 1D plans, and sets up
// communicator handles.
func New(input *RowTile, nx, ny int, opts ...config.Option) (*Engine, error) {
	o := config.ApplyOptions(config.DefaultOptions(), opts)

	if err := o.World.Validate(); err != nil {
		return nil, fmt.Errorf("validating world: %w", err)
	}

	sz, err := computeSizes(nx, ny, o.World.SiteCount)
	if err != nil {
		return nil, err
	}

	if input == nil {
		return nil, ErrNilBuffer
	}

	wantShape := grid.NewShape2D(sz.nxLocal, sz.ny+2)
	if input.Shape() != wantShape {
		return nil, &SizeError{Expected: wantShape.Size(), Got: input.Shape().Size(), Context: "input row-tile"}
	}

	backend := o.Backend
	if backend == nil {
		backend = fftbackend.NewAlgoFFTBackend()
	}

	r2c, err := backend.NewR2CPlan(sz.ny, o.PlanQuality)
	if err != nil {
		Logger.Error().Err(err).Int("ny", sz.ny).Msg("creating R2C plan")
		return nil, fmt.Errorf("creating R2C plan: %w", err)
	}

	c2c, err := backend.NewC2CPlan(sz.cx, o.PlanQuality)
	if err != nil {
		Logger.Error().Err(err).Int("cx", sz.cx).Msg("creating C2C plan")
		return nil, fmt.Errorf("creating C2C plan: %w", err)
	}

	scatterComms, a2aComm, err := setupCommunicators(o.World.Exchanger, o.CommScheme, o.World.SiteCount, o.World.ThisSite)
	if err != nil {
		return nil, err
	}

	return &Engine{
		sz:           sz,
		opts:         o,
		scheme:       o.CommScheme,
		ex:           o.World.Exchanger,
		thisSite:     o.World.ThisSite,
		tile:         input,
		colTile:      NewColumnTile(sz.nyLocal, 2*sz.cx),
		packY:        NewPackBufferSet(sz.p, sz.nxLocal*sz.chunkY),
		packX:        NewPackBufferSet(sz.p, sz.nyLocal*sz.chunkX),
		r2c:          r2c,
		c2c:          c2c,
		backend:      backend,
		scatterComms: scatterComms,
		a2aComm:      a2aComm,
	}, nil
}

// Execute implements the execute operation: one forward 2D R2C transform.
// The engine retains ownership of its row-tile (copy-out, not move-out —
// see the DESIGN.md resolution of the tile-lifetime design note), so a
// second Execute call re-runs the transform on the tile's current
// contents rather than an emptied one.
func (e *Engine) Execute(ctx context.Context) (*RowTile, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return nil, ErrAlreadyDestroyed
	}

	if e.tile == nil {
		return nil, ErrEmptyTile
	}

	workers := effectiveWorkers(e.opts.Workers)

	if err := parallelFor(workers, e.sz.nxLocal, func(_, start, end int) error {
		for i := start; i < end; i++ {
			if err := fftRowR2C(e.r2c, e.tile, i); err != nil {
				return fmt.Errorf("local R2C row %d: %w", i, err)
			}
		}

		return nil
	}); err != nil {
		return nil, err
	}

	if err := parallelFor(workers, e.sz.nxLocal, func(_, start, end int) error {
		for i := start; i < end; i++ {
			splitY(e.tile.Row(i), i, e.sz.chunkY, e.packY)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	gen1 := e.gen.Next()

	recvY, err := runTranspose(ctx, e.ex, e.scheme, e.scatterComms, e.a2aComm, gen1, e.thisSite, e.packY)
	if err != nil {
		Logger.Error().Err(err).Uint64("generation", gen1).Msg("global transpose #1 failed")
		return nil, fmt.Errorf("global transpose #1: %w", err)
	}

	e.packY.Reset()

	if err := parallelFor2D(workers, e.sz.p, e.sz.nyLocal, func(i, k int) error {
		transposeYtoX(e.colTile, k, i, e.sz.chunkY, e.sz.nxLocal, e.sz.p, recvY[i])
		return nil
	}); err != nil {
		return nil, err
	}

	if err := parallelFor(workers, e.sz.nyLocal, func(_, start, end int) error {
		for i := start; i < end; i++ {
			if err := fftRowC2C(e.c2c, e.colTile, i); err != nil {
				return fmt.Errorf("local C2C row %d: %w", i, err)
			}
		}

		return nil
	}); err != nil {
		return nil, err
	}

	if err := parallelFor(workers, e.sz.nyLocal, func(_, start, end int) error {
		for i := start; i < end; i++ {
			splitX(e.colTile.Row(i), i, e.sz.chunkX, e.packX)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	gen2 := e.gen.Next()

	recvX, err := runTranspose(ctx, e.ex, e.scheme, e.scatterComms, e.a2aComm, gen2, e.thisSite, e.packX)
	if err != nil {
		Logger.Error().Err(err).Uint64("generation", gen2).Msg("global transpose #2 failed")
		return nil, fmt.Errorf("global transpose #2: %w", err)
	}

	e.packX.Reset()

	if err := parallelFor2D(workers, e.sz.p, e.sz.nxLocal, func(i, k int) error {
		transposeXtoY(e.tile, k, i, e.sz.chunkX, e.sz.nyLocal, e.sz.p, recvX[i])
		return nil
	}); err != nil {
		return nil, err
	}

	return e.tile.Clone(), nil
}

// TakeResult hands the engine's current row-tile to the caller by move,
// leaving the engine without a tile: later Execute and TakeResult calls
// return ErrEmptyTile. Use this instead of relying on Execute's return value when
// the caller wants to reclaim the buffer without paying for a copy.
func (e *Engine) TakeResult() (*RowTile, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tile == nil {
		return nil, ErrEmptyTile
	}

	result := e.tile
	e.tile = nil

	return result, nil
}

// Destroy releases plans, communicator handles, and buffers in that
// order. It is idempotent: calling it more than once, or calling it
// before Execute was ever called, has no further effect.
func (e *Engine) Destroy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.destroyed {
		return nil
	}

	e.backend.Cleanup()
	closeCommunicators(e.ex, e.scatterComms, e.a2aComm, e.scheme)

	e.tile = nil
	e.colTile = nil
	e.packY = nil
	e.packX = nil
	e.destroyed = true

	return nil
}
