package fftbackend

import "errors"

var (
	// ErrInvalidSize is returned when a plan is requested for a non-positive length.
	ErrInvalidSize = errors.New("fftbackend: invalid transform size")

	// ErrUnknownPlanQuality is returned when a plan_quality value is not recognised.
	ErrUnknownPlanQuality = errors.New("fftbackend: unknown plan quality")

	// ErrSizeMismatch is returned when a buffer's length does not match the plan.
	ErrSizeMismatch = errors.New("fftbackend: buffer size does not match plan")
)
