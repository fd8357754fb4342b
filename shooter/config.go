package shooter

import (
	"fmt"
	"log/slog"
	"math"
)

// Extent is a half width and half height.
type Extent struct {
	X, Y float64
}

// Config holds every tunable of the simulation. It is installed as a
// singleton at setup and treated as read-only afterwards.
type Config struct {
	// Width and Height of the play-field, in Position units. The field is
	// centred on the origin.
	Width, Height float64

	// BaseSpeed converts steering velocity to units per second.
	BaseSpeed float64
	// Timestep is the fixed simulated duration of one frame, in seconds.
	Timestep float64

	// PlayerHalfExtent is half the ship's footprint, used for clamping and
	// for placing lasers at the ship's nose.
	PlayerHalfExtent Extent
	// PlayerSpawnMargin is the gap between the ship and the bottom edge at spawn.
	PlayerSpawnMargin float64
	PlayerDepth       float64

	// LaserVelocityY is the laser's steering velocity. It is integrated
	// with BaseSpeed like every other velocity, so 2 means twice ship speed.
	LaserVelocityY float64

	Opposed OpposedPolicy
}

// DefaultConfig returns the configuration the game ships with.
func DefaultConfig() Config {
	return Config{
		Width:             900,
		Height:            1200,
		BaseSpeed:         500,
		Timestep:          1.0 / 60.0,
		PlayerHalfExtent:  Extent{X: 46, Y: 46},
		PlayerSpawnMargin: 5,
		PlayerDepth:       10,
		LaserVelocityY:    2,
		Opposed:           OpposedCancel,
	}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Validate checks the configuration before anything is spawned.
func (c Config) Validate() error {
	switch {
	case !positive(c.Width) || !positive(c.Height):
		return fmt.Errorf("%w: %vx%v", ErrMissingPlayField, c.Width, c.Height)
	case !(c.PlayerHalfExtent.X >= 0) || !(c.PlayerHalfExtent.Y >= 0) ||
		math.IsInf(c.PlayerHalfExtent.X, 1) || math.IsInf(c.PlayerHalfExtent.Y, 1):
		return fmt.Errorf("%w: %+v", ErrInvalidExtent, c.PlayerHalfExtent)
	case 2*c.PlayerHalfExtent.X >= c.Width || 2*c.PlayerHalfExtent.Y >= c.Height:
		return fmt.Errorf("%w: field %vx%v, player %vx%v", ErrPlayFieldTooSmall,
			c.Width, c.Height, 2*c.PlayerHalfExtent.X, 2*c.PlayerHalfExtent.Y)
	case !positive(c.Timestep):
		return fmt.Errorf("%w: %v", ErrInvalidTimestep, c.Timestep)
	case !positive(c.BaseSpeed):
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, c.BaseSpeed)
	case !positive(c.LaserVelocityY):
		return fmt.Errorf("%w: %v", ErrInvalidLaserVelocity, c.LaserVelocityY)
	case c.Opposed != OpposedCancel && c.Opposed != OpposedPositiveWins:
		return fmt.Errorf("%w: %d", ErrInvalidOpposedPolicy, c.Opposed)
	}
	return nil
}

// Step is the distance a unit velocity covers in one frame.
func (c Config) Step() float64 {
	return c.BaseSpeed * c.Timestep
}

// Top is the Y coordinate of the play-field's upper edge.
func (c Config) Top() float64 {
	return c.Height / 2
}

// PlayerBounds is the rectangle the ship's centre is kept inside.
func (c Config) PlayerBounds() Bounds {
	return Bounds{
		MinX: -c.Width/2 + c.PlayerHalfExtent.X,
		MaxX: c.Width/2 - c.PlayerHalfExtent.X,
		MinY: -c.Height/2 + c.PlayerHalfExtent.Y,
		MaxY: c.Height/2 - c.PlayerHalfExtent.Y,
	}
}

// LogValue implements slog.LogValuer.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("width", c.Width),
		slog.Float64("height", c.Height),
		slog.Float64("base_speed", c.BaseSpeed),
		slog.Float64("timestep", c.Timestep),
		slog.Float64("laser_vy", c.LaserVelocityY),
		slog.String("opposed", c.Opposed.String()),
	)
}
