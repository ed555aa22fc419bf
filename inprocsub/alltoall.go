package inprocsub

import (
	"context"
	"sync"

	"github.com/MeKo-Tech/dfft2d/locality"
)

// allToAllPoint is the rendezvous state for one (basename, generation)
// all-to-all: every site posts its full send set into grid[thisSite], and
// once all P sites have arrived, each reads column thisSite back out of
// every row as its receive set.
type allToAllPoint struct {
	mu      sync.Mutex
	grid    [][][]float64
	arrived int
	done    chan struct{}
	once    sync.Once
}

func newAllToAllPoint(siteCount int) *allToAllPoint {
	return &allToAllPoint{
		grid: make([][][]float64, siteCount),
		done: make(chan struct{}),
	}
}

func (e *Exchanger) allToAllPointFor(k string, siteCount int) *allToAllPoint {
	e.mu.Lock()
	defer e.mu.Unlock()

	ap, ok := e.a2a[k]
	if !ok {
		ap = newAllToAllPoint(siteCount)
		e.a2a[k] = ap
	}

	return ap
}

// AllToAll exchanges one buffer per destination among all sites and returns
// the receive set in source-rank order.
func (e *Exchanger) AllToAll(
	ctx context.Context,
	comm locality.Communicator,
	generation uint64,
	send [][]float64,
) ([][]float64, error) {
	if len(send) != comm.SiteCount() {
		return nil, locality.ErrPeerCountMismatch
	}

	ap := e.allToAllPointFor(key(comm.Basename(), generation), comm.SiteCount())

	owned := make([][]float64, len(send))
	for i, buf := range send {
		owned[i] = make([]float64, len(buf))
		copy(owned[i], buf)
	}

	ap.mu.Lock()
	ap.grid[comm.ThisSite()] = owned
	ap.arrived++

	if ap.arrived == comm.SiteCount() {
		ap.once.Do(func() { close(ap.done) })
	}

	ap.mu.Unlock()

	select {
	case <-ap.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	recv := make([][]float64, comm.SiteCount())
	for src := 0; src < comm.SiteCount(); src++ {
		recv[src] = ap.grid[src][comm.ThisSite()]
	}

	return recv, nil
}
