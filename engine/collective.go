package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MeKo-Tech/dfft2d/locality"
)

// runTranspose drives one global transpose (spec section 4.4): it takes
// this locality's pack buffer set (one buffer per destination) and
// returns a receive set of P buffers, recv[i] being the contribution
// this locality owns from source i, regardless of which scheme produced
// it (scatter or all-to-all) — the correctness-equivalence property.
func runTranspose(
	ctx context.Context,
	ex locality.Exchanger,
	scheme locality.CommScheme,
	scatterComms []locality.Communicator,
	a2aComm locality.Communicator,
	generation uint64,
	thisSite int,
	pack *PackBufferSet,
) ([][]float64, error) {
	switch scheme {
	case locality.SchemeScatter:
		return scatterTranspose(ctx, ex, scatterComms, generation, thisSite, pack)
	case locality.SchemeAllToAll:
		return ex.AllToAll(ctx, a2aComm, generation, pack.Buffers())
	default:
		return nil, locality.ErrUnknownCommScheme
	}
}

// scatterTranspose issues the P root-rotating scatters described in spec
// section 4.4 concurrently — one per loop iteration — using errgroup
// rather than a hand-rolled WaitGroup, in contrast to the intra-locality
// scheduler's parallelFor.
func scatterTranspose(
	ctx context.Context,
	ex locality.Exchanger,
	comms []locality.Communicator,
	generation uint64,
	thisSite int,
	pack *PackBufferSet,
) ([][]float64, error) {
	recv := make([][]float64, len(comms))

	g, gctx := errgroup.WithContext(ctx)

	for i, comm := range comms {
		i, comm := i, comm

		g.Go(func() error {
			if thisSite == i {
				piece, err := ex.ScatterTo(gctx, comm, generation, pack.Buffers())
				if err != nil {
					return fmt.Errorf("scatter-to root %d: %w", i, err)
				}

				recv[i] = piece

				return nil
			}

			piece, err := ex.ScatterFrom(gctx, comm, generation, i)
			if err != nil {
				return fmt.Errorf("scatter-from root %d: %w", i, err)
			}

			recv[i] = piece

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return recv, nil
}
