// Package config holds the functional-options configuration surface for
// the engine (programmatic construction) plus a file/env-driven loader
// built on viper.
package config

import (
	"github.com/MeKo-Tech/dfft2d/fftbackend"
	"github.com/MeKo-Tech/dfft2d/inprocsub"
	"github.com/MeKo-Tech/dfft2d/locality"
)

// Options configures the behavior of a distributed FFT engine.
type Options struct {
	// CommScheme selects SCATTER or ALL_TO_ALL for the global transpose.
	CommScheme locality.CommScheme

	// PlanQuality is forwarded to the local FFT backend planner verbatim.
	PlanQuality fftbackend.PlanQuality

	// Workers is the number of parallel workers used by the intra-locality
	// task scheduler. 0 means use runtime.GOMAXPROCS.
	Workers int

	// World describes this process's place among its peers and the
	// Exchanger that realizes the collective substrate between them. The
	// zero value is not valid; DefaultOptions fills in a single-process
	// inprocsub world of size 1 so the engine degrades gracefully when
	// nothing else is configured.
	World locality.World

	// Backend is the local 1D FFT backend. DefaultOptions fills in
	// fftbackend.NewAlgoFFTBackend().
	Backend fftbackend.Backend
}

// Option is a function that modifies Options.
type Option func(*Options)

// DefaultOptions returns the default engine options: SCATTER, ESTIMATE
// planning, GOMAXPROCS workers, and a single-process inprocsub world of
// size 1 so the engine degrades gracefully when nothing else is
// configured.
func DefaultOptions() Options {
	return Options{
		CommScheme:  locality.SchemeScatter,
		PlanQuality: fftbackend.Estimate,
		Workers:     0,
		World:       locality.World{SiteCount: 1, ThisSite: 0, Exchanger: inprocsub.New()},
		Backend:     fftbackend.NewAlgoFFTBackend(),
	}
}

// WithCommScheme sets the communication scheme for the global transpose.
func WithCommScheme(scheme locality.CommScheme) Option {
	return func(o *Options) {
		o.CommScheme = scheme
	}
}

// WithPlanQuality sets the planning effort forwarded to the backend.
func WithPlanQuality(q fftbackend.PlanQuality) Option {
	return func(o *Options) {
		o.PlanQuality = q
	}
}

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithWorld sets the locality world (site count, this site, Exchanger).
func WithWorld(w locality.World) Option {
	return func(o *Options) {
		o.World = w
	}
}

// WithExchanger replaces only the Exchanger of the current World, leaving
// SiteCount/ThisSite as already configured.
func WithExchanger(ex locality.Exchanger) Option {
	return func(o *Options) {
		o.World.Exchanger = ex
	}
}

// WithBackend sets the local 1D FFT backend.
func WithBackend(b fftbackend.Backend) Option {
	return func(o *Options) {
		o.Backend = b
	}
}

// ApplyOptions applies option functions to a base Options struct.
func ApplyOptions(base Options, opts []Option) Options {
	for _, opt := range opts {
		opt(&base)
	}

	return base
}
