// Package inprocsub implements locality.Exchanger entirely in-process:
// every "locality" is a goroutine inside the same Go process, and a
// collective is a rendezvous keyed by (basename, generation) rather than a
// network round trip. It is the default transport used by the engine's own
// test suite, where standing up real processes would be overkill for
// checking the pipeline's correctness.
//
// The rendezvous bookkeeping follows the same register/await-then-fan-out
// shape as a CSP-style channel network: participants post into a shared
// slot and block until every peer has arrived, then read their piece back
// out, mirroring the register/broadcast channel pattern used for WebSocket
// hubs elsewhere in this module's transport code (see netsub).
package inprocsub

import (
	"fmt"
	"sync"

	"github.com/MeKo-Tech/dfft2d/locality"
)

// Exchanger is the in-process Exchanger implementation. Every locality
// participating in the same collective must share the same *Exchanger
// instance (e.g. by closing over one value when spawning the per-locality
// goroutines, as runDistributed in engine/engine_test.go does).
type Exchanger struct {
	mu     sync.Mutex
	scatt  map[string]*scatterPoint
	a2a    map[string]*allToAllPoint
}

// New creates an empty in-process Exchanger ready to be shared across the
// goroutines standing in for localities.
func New() *Exchanger {
	return &Exchanger{
		scatt: make(map[string]*scatterPoint),
		a2a:   make(map[string]*allToAllPoint),
	}
}

func (e *Exchanger) NewCommunicator(basename string, siteCount, thisSite int) (locality.Communicator, error) {
	return locality.NewCommunicator(basename, siteCount, thisSite)
}

func (e *Exchanger) Close(comm locality.Communicator) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	prefix := comm.Basename() + "/"
	for k := range e.scatt {
		if hasPrefix(k, prefix) {
			delete(e.scatt, k)
		}
	}

	for k := range e.a2a {
		if hasPrefix(k, prefix) {
			delete(e.a2a, k)
		}
	}

	return nil
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func key(basename string, generation uint64) string {
	return fmt.Sprintf("%s/%d", basename, generation)
}
