package shooter_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/invaders/ecs"
	"github.com/plus3/invaders/shooter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerBounds(t *testing.T) {
	bounds := testConfig().PlayerBounds()

	assert.Equal(t, shooter.Bounds{MinX: -404, MaxX: 404, MinY: -554, MaxY: 554}, bounds)
}

func TestClamp(t *testing.T) {
	bounds := testConfig().PlayerBounds()

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"inside", 10, -20, 10, -20},
		{"left", -450, 0, -404, 0},
		{"right", 1e9, 0, 404, 0},
		{"top", 0, 600, 0, 554},
		{"bottom", 0, -595, 0, -554},
		{"corner", 500, -700, 404, -554},
		{"on edge", 404, 554, 404, 554},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := bounds.Clamp(tt.x, tt.y)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)

			x2, y2 := bounds.Clamp(x, y)
			assert.Equal(t, x, x2, "clamp is idempotent")
			assert.Equal(t, y, y2, "clamp is idempotent")
			assert.True(t, bounds.Contains(x, y))
		})
	}
}

func TestBoundarySystemClipsPlayerOnly(t *testing.T) {
	w := newWorld(t, testConfig(), &shooter.BoundarySystem{})
	player, err := shooter.SpawnPlayer(w.storage)
	require.NoError(t, err)
	laser := w.spawnLaser(0, 900, 2)

	pos := ecs.ReadComponent[shooter.Position](w.storage, player)
	require.NotNil(t, pos)
	depth := pos.Z
	pos.X, pos.Y = 1000, -1000

	w.step()

	assert.Equal(t, shooter.Position{X: 404, Y: -554, Z: depth}, w.position(player))
	assert.Equal(t, 900.0, w.position(laser).Y, "projectiles are not clamped")
}

func TestClampKeepsVelocity(t *testing.T) {
	game, err := shooter.New(testConfig(), nil, shooter.WithPlayerAt(400, 0))
	require.NoError(t, err)

	game.SetKeys(shooter.KeyState{Right: true})
	game.Steps(5)

	pos, ok := game.Player()
	require.True(t, ok)
	assert.Equal(t, 404.0, pos.X)

	// Pushing into the wall is harmless; steering away works immediately.
	game.SetKeys(shooter.KeyState{Left: true})
	game.Step()
	pos, _ = game.Player()
	assert.InDelta(t, 404-500.0/60, pos.X, 1e-9)
}

func TestClampInvariantUnderRandomInput(t *testing.T) {
	cfg := testConfig()
	bounds := cfg.PlayerBounds()
	rng := rand.New(rand.NewPCG(7, 11))

	game, err := shooter.New(cfg, nil)
	require.NoError(t, err)

	for frame := range 5000 {
		game.SetKeys(shooter.KeyState{
			Left:  rng.IntN(2) == 0,
			Right: rng.IntN(3) == 0,
			Up:    rng.IntN(2) == 0,
			Down:  rng.IntN(4) == 0,
			Fire:  rng.IntN(5) == 0,
		})
		game.Step()

		pos, ok := game.Player()
		require.True(t, ok)
		require.Truef(t, bounds.Contains(pos.X, pos.Y), "frame %d: player at (%v, %v) escaped %+v", frame, pos.X, pos.Y, bounds)
	}
}
