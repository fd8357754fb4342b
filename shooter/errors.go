package shooter

import "errors"

var (
	// ErrMissingPlayField is returned when the play-field size is unknown
	// or not positive. Nothing can be clamped or despawned without it.
	ErrMissingPlayField = errors.New("shooter: play-field size not available")

	// ErrPlayFieldTooSmall is returned when the player does not fit inside
	// the play-field, which would invert the clamp bounds.
	ErrPlayFieldTooSmall = errors.New("shooter: play-field smaller than player")

	ErrInvalidExtent        = errors.New("shooter: player half extent must not be negative")
	ErrInvalidTimestep      = errors.New("shooter: timestep must be positive")
	ErrInvalidSpeed         = errors.New("shooter: base speed must be positive")
	ErrInvalidLaserVelocity = errors.New("shooter: laser velocity must be positive")
	ErrInvalidOpposedPolicy = errors.New("shooter: unknown opposed key policy")

	// ErrPlayerExists is returned by SpawnPlayer when a player is already
	// present; the game holds exactly one.
	ErrPlayerExists = errors.New("shooter: player already spawned")
)
