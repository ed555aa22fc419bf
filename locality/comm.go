// Package locality defines the collective-communication substrate
// contract the distributed FFT engine is built on: a named communicator
// keyed by (site count, this site), a generation counter, and the Exchanger capability set (pack/exchange/unpack as a
// capability interface, not a branch on a transport-name string) that
// the two transport-specific collectives (scatter, all-to-all) are
// expressed through.
package locality

import (
	"fmt"
	"sync/atomic"
)

// CommScheme selects the collective pattern used for the global transpose.
type CommScheme int

const (
	// SchemeScatter uses P independent root-rotating scatters.
	SchemeScatter CommScheme = iota

	// SchemeAllToAll uses a single shared all-to-all collective.
	SchemeAllToAll
)

// String implements fmt.Stringer.
func (s CommScheme) String() string {
	switch s {
	case SchemeScatter:
		return "scatter"
	case SchemeAllToAll:
		return "all_to_all"
	default:
		return fmt.Sprintf("CommScheme(%d)", int(s))
	}
}

// ParseCommScheme parses the configuration-enumeration spelling of a
// comm_scheme value.
func ParseCommScheme(s string) (CommScheme, error) {
	switch s {
	case "scatter":
		return SchemeScatter, nil
	case "all_to_all", "alltoall", "all-to-all":
		return SchemeAllToAll, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCommScheme, s)
	}
}

// Communicator is a named collective endpoint. Basename is owned (a Go
// string copy, not a borrowed byte slice), so it stays valid for the
// communicator's whole lifetime regardless of what the caller does with
// the string it passed in.
type Communicator struct {
	basename  string
	siteCount int
	thisSite  int
}

// NewCommunicator validates and constructs a Communicator.
func NewCommunicator(basename string, siteCount, thisSite int) (Communicator, error) {
	if siteCount < 1 {
		return Communicator{}, ErrInvalidSiteCount
	}

	if thisSite < 0 || thisSite >= siteCount {
		return Communicator{}, ErrInvalidSite
	}

	return Communicator{basename: basename, siteCount: siteCount, thisSite: thisSite}, nil
}

// Basename returns the communicator's stable name.
func (c Communicator) Basename() string { return c.basename }

// SiteCount returns P for this communicator.
func (c Communicator) SiteCount() int { return c.siteCount }

// ThisSite returns this locality's rank within the communicator.
func (c Communicator) ThisSite() int { return c.thisSite }

// Generation is a monotonic counter that disambiguates successive
// collective calls sharing the same communicator. The engine keeps one per
// Engine, shared by all of its communicators, and increments it exactly
// twice per Execute() (once per global transpose).
type Generation struct {
	n atomic.Uint64
}

// Next returns the next generation value, starting at 0.
func (g *Generation) Next() uint64 {
	return g.n.Add(1) - 1
}

// Load returns the most recently issued generation count (the number of
// times Next has been called), without advancing it.
func (g *Generation) Load() uint64 {
	return g.n.Load()
}
