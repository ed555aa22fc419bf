package engine

import (
	"fmt"

	"github.com/MeKo-Tech/dfft2d/locality"
)

// setupCommunicators implements spec section 4.6: one communicator per
// collective root for SCATTER (P total, basenames "transpose-root-0" ..
// "transpose-root-{P-1}"), or one shared communicator for ALL_TO_ALL
// (basename "transpose-a2a"). Basenames are stable, derived from a small
// integer the way the original's ASCII-rooted naming was, without
// depending on ASCII byte values.
func setupCommunicators(
	ex locality.Exchanger,
	scheme locality.CommScheme,
	siteCount, thisSite int,
) (scatterComms []locality.Communicator, a2aComm locality.Communicator, err error) {
	switch scheme {
	case locality.SchemeScatter:
		scatterComms = make([]locality.Communicator, siteCount)

		for i := 0; i < siteCount; i++ {
			comm, err := ex.NewCommunicator(fmt.Sprintf("transpose-root-%d", i), siteCount, thisSite)
			if err != nil {
				return nil, locality.Communicator{}, fmt.Errorf("creating scatter communicator %d: %w", i, err)
			}

			scatterComms[i] = comm
		}

		return scatterComms, locality.Communicator{}, nil

	case locality.SchemeAllToAll:
		comm, err := ex.NewCommunicator("transpose-a2a", siteCount, thisSite)
		if err != nil {
			return nil, locality.Communicator{}, fmt.Errorf("creating all-to-all communicator: %w", err)
		}

		return nil, comm, nil

	default:
		return nil, locality.Communicator{}, locality.ErrUnknownCommScheme
	}
}

// closeCommunicators releases every communicator created by
// setupCommunicators. Safe to call more than once (Exchanger.Close is
// documented as idempotent).
func closeCommunicators(ex locality.Exchanger, scatterComms []locality.Communicator, a2aComm locality.Communicator, scheme locality.CommScheme) {
	switch scheme {
	case locality.SchemeScatter:
		for _, comm := range scatterComms {
			if err := ex.Close(comm); err != nil {
				Logger.Warn().Err(err).Str("basename", comm.Basename()).Msg("closing scatter communicator")
			}
		}
	case locality.SchemeAllToAll:
		if err := ex.Close(a2aComm); err != nil {
			Logger.Warn().Err(err).Str("basename", a2aComm.Basename()).Msg("closing all-to-all communicator")
		}
	}
}
