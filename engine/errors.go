package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when Nx, Ny, or P are non-positive, or
	// when Nx mod P != 0 or Cy mod P != 0.
	ErrInvalidSize = errors.New("engine: invalid grid size: dimensions must be positive and evenly divisible")

	// ErrUnknownCommScheme is returned when a comm_scheme value is not recognised.
	ErrUnknownCommScheme = errors.New("engine: unknown communication scheme")

	// ErrUnknownPlanQuality is returned when a plan_quality value is not recognised.
	ErrUnknownPlanQuality = errors.New("engine: unknown plan quality")

	// ErrNilBuffer is returned when a required buffer is nil.
	ErrNilBuffer = errors.New("engine: buffer is nil")

	// ErrSizeMismatch is returned when a buffer's length does not match the expected size.
	ErrSizeMismatch = errors.New("engine: buffer size does not match plan dimensions")

	// ErrAlreadyDestroyed is returned by Execute when the engine has
	// already released its resources. Destroy itself returns nil when
	// called again (idempotent teardown).
	ErrAlreadyDestroyed = errors.New("engine: already destroyed")

	// ErrEmptyTile is returned when Execute is called with no row-tile available.
	ErrEmptyTile = errors.New("engine: row-tile is empty")
)

// SizeError provides details about a size mismatch.
type SizeError struct {
	Expected int
	Got      int
	Context  string
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("size mismatch in %s: expected %d, got %d",
		e.Context, e.Expected, e.Got)
}

// ValidationError wraps validation failures with context.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}
