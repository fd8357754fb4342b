package shooter

import "github.com/plus3/invaders/ecs"

// Integrate advances pos by vel over one frame of the given step
// (BaseSpeed * Timestep). There is no sub-stepping.
func Integrate(pos *Position, vel Velocity, step float64) {
	pos.X += vel.X * step
	pos.Y += vel.Y * step
}

// MovementSystem integrates every entity that has a position and a velocity.
// It uses the configured fixed timestep, not the host's frame delta.
type MovementSystem struct {
	Config ecs.Singleton[Config]
	Bodies ecs.Query[struct {
		*Position
		*Velocity
	}]
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	cfg := s.Config.Get()
	if cfg == nil {
		return
	}

	step := cfg.Step()
	for item := range s.Bodies.Values() {
		Integrate(item.Position, *item.Velocity, step)
	}
}
