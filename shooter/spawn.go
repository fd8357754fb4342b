package shooter

import (
	"fmt"

	"github.com/plus3/invaders/ecs"
)

// Tally counts what happened over the life of a game.
type Tally struct {
	ShotsFired int
	Despawned  int
}

// SpawnPlayer places the ship just above the bottom edge of the play-field.
// The Config singleton must already be installed.
func SpawnPlayer(storage *ecs.Storage) (ecs.EntityId, error) {
	var cfg *Config
	if !storage.ReadSingleton(&cfg) {
		return 0, ErrMissingPlayField
	}

	roles := ecs.NewView[struct{ *Role }](storage)
	for item := range roles.Values() {
		if *item.Role == RolePlayer {
			return 0, ErrPlayerExists
		}
	}

	x, y := cfg.PlayerBounds().Clamp(0, -cfg.Height/2+cfg.PlayerHalfExtent.Y+cfg.PlayerSpawnMargin)
	id := storage.Spawn(
		Position{X: x, Y: y, Z: cfg.PlayerDepth},
		Velocity{},
		RolePlayer,
		MovementPolicy{AutoDespawn: false},
		Sprite{Kind: SpriteShip},
	)
	return id, nil
}

// spawnPlayerAt is SpawnPlayer with an explicit starting point.
func spawnPlayerAt(storage *ecs.Storage, x, y float64) (ecs.EntityId, error) {
	id, err := SpawnPlayer(storage)
	if err != nil {
		return 0, err
	}
	pos := ecs.ReadComponent[Position](storage, id)
	if pos == nil {
		return 0, fmt.Errorf("shooter: player %d vanished after spawn", id)
	}
	pos.X, pos.Y = x, y
	return id, nil
}
