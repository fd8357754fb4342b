package shooter

import "github.com/plus3/invaders/ecs"

// FireTrigger remembers the fire key's state on the previous frame so that a
// shot is fired on the press edge only, never while the key is held.
type FireTrigger struct {
	Previous bool
}

// Update records this frame's key state and reports whether it is a
// released-to-pressed transition.
func (t *FireTrigger) Update(pressed bool) bool {
	edge := pressed && !t.Previous
	t.Previous = pressed
	return edge
}

// FireSystem spawns a laser at the ship's nose on every fire edge. There is no
// cooldown and no cap on live lasers.
type FireSystem struct {
	Keys    ecs.Singleton[KeyState]
	Trigger ecs.Singleton[FireTrigger]
	Config  ecs.Singleton[Config]
	Tally   ecs.Singleton[Tally]
	Bodies  ecs.Query[body]
}

func (s *FireSystem) Execute(frame *ecs.UpdateFrame) {
	keys, trigger, cfg := s.Keys.Get(), s.Trigger.Get(), s.Config.Get()
	if keys == nil || trigger == nil || cfg == nil {
		return
	}

	// The trigger tracks the key even on frames where no shot can be fired.
	if !trigger.Update(keys.Fire) {
		return
	}

	player, ok := singlePlayer(&s.Bodies)
	if !ok {
		return
	}

	frame.Commands.Spawn(laserComponents(*cfg, player.Position.X, player.Position.Y)...)
	if tally := s.Tally.Get(); tally != nil {
		tally.ShotsFired++
	}
}

func laserComponents(cfg Config, shipX, shipY float64) []any {
	return []any{
		Position{X: shipX, Y: shipY + cfg.PlayerHalfExtent.Y},
		Velocity{X: 0, Y: cfg.LaserVelocityY},
		RoleProjectile,
		MovementPolicy{AutoDespawn: true},
		Sprite{Kind: SpriteLaser},
	}
}
