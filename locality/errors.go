package locality

import "errors"

var (
	// ErrUnknownCommScheme is returned when a comm_scheme value is not recognised.
	ErrUnknownCommScheme = errors.New("locality: unknown communication scheme")

	// ErrInvalidSiteCount is returned when a communicator is created with P < 1.
	ErrInvalidSiteCount = errors.New("locality: site count must be positive")

	// ErrInvalidSite is returned when this-site is outside [0, siteCount).
	ErrInvalidSite = errors.New("locality: this-site index out of range")

	// ErrGenerationReplay names a repeated (basename, generation) pair on
	// one communicator. The transports in this module (inprocsub, netsub)
	// do not detect replayed pairs and never return it.
	ErrGenerationReplay = errors.New("locality: generation seen twice on this communicator")

	// ErrClosed is returned by World.Validate when the World has no
	// Exchanger. The transports in this module do not track closed
	// communicators and do not return it from their collective calls.
	ErrClosed = errors.New("locality: communicator is closed")

	// ErrPeerCountMismatch is returned when a collective call supplies a
	// buffer set whose length does not equal the communicator's site count.
	ErrPeerCountMismatch = errors.New("locality: buffer count does not match site count")
)
