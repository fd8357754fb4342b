package shooter_test

import (
	"testing"

	"github.com/plus3/invaders/ecs"
	"github.com/plus3/invaders/shooter"
	"github.com/stretchr/testify/require"
)

// testConfig matches the numbers used throughout the scenarios: a 900x1200
// field, 500 units/s and 60 frames per second.
func testConfig() shooter.Config {
	return shooter.DefaultConfig()
}

type world struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
}

// newWorld builds a bare world with the config and key singletons installed
// and only the given systems registered.
func newWorld(t *testing.T, cfg shooter.Config, systems ...ecs.System) *world {
	t.Helper()
	require.NoError(t, cfg.Validate())

	registry := ecs.NewComponentRegistry()
	shooter.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)
	storage.AddSingleton(cfg)
	storage.AddSingleton(shooter.KeyState{})
	storage.AddSingleton(shooter.FireTrigger{})
	storage.AddSingleton(shooter.Tally{})

	scheduler := ecs.NewScheduler(storage)
	for _, system := range systems {
		scheduler.Register(system)
	}
	return &world{storage: storage, scheduler: scheduler}
}

func (w *world) step() {
	w.scheduler.Once(1.0 / 60.0)
}

func (w *world) spawnLaser(x, y, vy float64) ecs.EntityId {
	return w.storage.Spawn(
		shooter.Position{X: x, Y: y},
		shooter.Velocity{Y: vy},
		shooter.RoleProjectile,
		shooter.MovementPolicy{AutoDespawn: true},
		shooter.Sprite{Kind: shooter.SpriteLaser},
	)
}

func (w *world) setKeys(keys shooter.KeyState) {
	var state *shooter.KeyState
	if w.storage.ReadSingleton(&state) {
		*state = keys
	}
}

func (w *world) position(id ecs.EntityId) shooter.Position {
	pos := ecs.ReadComponent[shooter.Position](w.storage, id)
	if pos == nil {
		return shooter.Position{}
	}
	return *pos
}

func (w *world) velocity(id ecs.EntityId) shooter.Velocity {
	vel := ecs.ReadComponent[shooter.Velocity](w.storage, id)
	if vel == nil {
		return shooter.Velocity{}
	}
	return *vel
}
