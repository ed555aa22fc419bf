package inprocsub

import (
	"context"
	"sync"

	"github.com/MeKo-Tech/dfft2d/locality"
)

// scatterPoint is the rendezvous state for one (basename, generation)
// scatter: the root posts one channel per site, and every non-root site
// blocks on its own channel until the root delivers.
type scatterPoint struct {
	once     sync.Once
	channels []chan []float64
	siteCnt  int
}

func newScatterPoint(siteCount int) *scatterPoint {
	chs := make([]chan []float64, siteCount)
	for i := range chs {
		chs[i] = make(chan []float64, 1)
	}

	return &scatterPoint{channels: chs, siteCnt: siteCount}
}

func (e *Exchanger) scatterPointFor(k string, siteCount int) *scatterPoint {
	e.mu.Lock()
	defer e.mu.Unlock()

	sp, ok := e.scatt[k]
	if !ok {
		sp = newScatterPoint(siteCount)
		e.scatt[k] = sp
	}

	return sp
}

// ScatterTo is called by the root of a scatter. It hands every other site
// its slice of buffers and returns the root's own slice directly.
func (e *Exchanger) ScatterTo(
	ctx context.Context,
	comm locality.Communicator,
	generation uint64,
	buffers [][]float64,
) ([]float64, error) {
	if len(buffers) != comm.SiteCount() {
		return nil, locality.ErrPeerCountMismatch
	}

	sp := e.scatterPointFor(key(comm.Basename(), generation), comm.SiteCount())

	for site, buf := range buffers {
		if site == comm.ThisSite() {
			continue
		}

		owned := make([]float64, len(buf))
		copy(owned, buf)

		select {
		case sp.channels[site] <- owned:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	own := make([]float64, len(buffers[comm.ThisSite()]))
	copy(own, buffers[comm.ThisSite()])

	return own, nil
}

// ScatterFrom is called by every non-root site to receive the piece the
// root addressed to it for this generation.
func (e *Exchanger) ScatterFrom(
	ctx context.Context,
	comm locality.Communicator,
	generation uint64,
	root int,
) ([]float64, error) {
	sp := e.scatterPointFor(key(comm.Basename(), generation), comm.SiteCount())

	select {
	case buf := <-sp.channels[comm.ThisSite()]:
		return buf, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
