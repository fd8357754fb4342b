package shooter

import "github.com/plus3/invaders/ecs"

// KeyState is the raw input of one frame. Hosts overwrite it before every
// Game.Step; the simulation only reads it.
type KeyState struct {
	Left, Right bool
	Up, Down    bool
	Fire        bool
}

// OpposedPolicy decides an axis when both of its keys are held.
type OpposedPolicy uint8

const (
	// OpposedCancel resolves opposing keys to 0.
	OpposedCancel OpposedPolicy = iota
	// OpposedPositiveWins resolves opposing keys to +1 (right, up).
	OpposedPositiveWins
)

func (p OpposedPolicy) String() string {
	switch p {
	case OpposedCancel:
		return "cancel"
	case OpposedPositiveWins:
		return "positive-wins"
	default:
		return "invalid"
	}
}

func resolveAxis(positive, negative bool, policy OpposedPolicy) float64 {
	switch {
	case positive && negative && policy == OpposedCancel:
		return 0
	case positive:
		return 1
	case negative:
		return -1
	default:
		return 0
	}
}

// MapVelocity turns held direction keys into a steering velocity. Each axis
// is -1, 0 or 1; diagonals are not normalised.
func MapVelocity(keys KeyState, policy OpposedPolicy) Velocity {
	return Velocity{
		X: resolveAxis(keys.Right, keys.Left, policy),
		Y: resolveAxis(keys.Up, keys.Down, policy),
	}
}

// InputSystem overwrites the player's velocity from the current key state
// every frame.
type InputSystem struct {
	Keys   ecs.Singleton[KeyState]
	Config ecs.Singleton[Config]
	Bodies ecs.Query[body]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	keys, cfg := s.Keys.Get(), s.Config.Get()
	if keys == nil || cfg == nil {
		return
	}

	player, ok := singlePlayer(&s.Bodies)
	if !ok {
		return
	}
	*player.Velocity = MapVelocity(*keys, cfg.Opposed)
}

// singlePlayer returns the player when exactly one exists this frame.
func singlePlayer(q *ecs.Query[body]) (body, bool) {
	var (
		player body
		found  int
	)
	for item := range q.Values() {
		if *item.Role == RolePlayer {
			player = item
			found++
		}
	}
	return player, found == 1
}
