package engine

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-wide structured logger for ambient diagnostics:
// backend plan-creation failures, global-transpose failures, and
// communicator-close failures during teardown.
// It is not a "timing/result report" feature; it carries no state about
// the transform itself, only operational events.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}
