package locality

import "context"

// Exchanger is the collective-communication substrate contract: create
// a named communicator, then run a scatter or an all-to-all keyed by
// (communicator, generation).
//
// Implementations: inprocsub (goroutine+channel, in-process) and
// netsub (WebSocket, real network). Both are transport-specific
// realizations of the same {pack, exchange, unpack} capability set —
// the engine only ever calls these methods and never branches on
// which transport it was given.
type Exchanger interface {
	// NewCommunicator creates a named communicator. basename must be
	// stable and distinct across concurrently-live communicators on
	// this Exchanger.
	NewCommunicator(basename string, siteCount, thisSite int) (Communicator, error)

	// ScatterTo is called by the root of a scatter (comm.ThisSite() ==
	// root) with the complete per-destination buffer set. It returns
	// this locality's own piece (buffers[comm.ThisSite()]).
	ScatterTo(ctx context.Context, comm Communicator, generation uint64, buffers [][]float64) ([]float64, error)

	// ScatterFrom is called by every non-root locality to obtain the
	// piece the root addressed to it for this generation.
	ScatterFrom(ctx context.Context, comm Communicator, generation uint64, root int) ([]float64, error)

	// AllToAll exchanges one buffer per destination among all sites and
	// returns the receive set in source-rank order.
	AllToAll(ctx context.Context, comm Communicator, generation uint64, send [][]float64) ([][]float64, error)

	// Close releases any transport resources associated with comm. It
	// is safe to call more than once.
	Close(comm Communicator) error
}
