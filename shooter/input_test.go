package shooter_test

import (
	"fmt"
	"testing"

	"github.com/plus3/invaders/shooter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapVelocity(t *testing.T) {
	tests := []struct {
		name   string
		keys   shooter.KeyState
		policy shooter.OpposedPolicy
		want   shooter.Velocity
	}{
		{"idle", shooter.KeyState{}, shooter.OpposedCancel, shooter.Velocity{}},
		{"left", shooter.KeyState{Left: true}, shooter.OpposedCancel, shooter.Velocity{X: -1}},
		{"right", shooter.KeyState{Right: true}, shooter.OpposedCancel, shooter.Velocity{X: 1}},
		{"up", shooter.KeyState{Up: true}, shooter.OpposedCancel, shooter.Velocity{Y: 1}},
		{"down", shooter.KeyState{Down: true}, shooter.OpposedCancel, shooter.Velocity{Y: -1}},
		{"diagonal is not normalised", shooter.KeyState{Right: true, Up: true}, shooter.OpposedCancel, shooter.Velocity{X: 1, Y: 1}},
		{"left and right cancel", shooter.KeyState{Left: true, Right: true}, shooter.OpposedCancel, shooter.Velocity{}},
		{"up and down cancel", shooter.KeyState{Up: true, Down: true}, shooter.OpposedCancel, shooter.Velocity{}},
		{"all four cancel", shooter.KeyState{Left: true, Right: true, Up: true, Down: true}, shooter.OpposedCancel, shooter.Velocity{}},
		{"fire does not steer", shooter.KeyState{Fire: true}, shooter.OpposedCancel, shooter.Velocity{}},
		{"right wins", shooter.KeyState{Left: true, Right: true}, shooter.OpposedPositiveWins, shooter.Velocity{X: 1}},
		{"up wins", shooter.KeyState{Up: true, Down: true}, shooter.OpposedPositiveWins, shooter.Velocity{Y: 1}},
		{"single key unaffected by policy", shooter.KeyState{Left: true, Down: true}, shooter.OpposedPositiveWins, shooter.Velocity{X: -1, Y: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shooter.MapVelocity(tt.keys, tt.policy))
		})
	}
}

func TestMapVelocityIsUnitSteering(t *testing.T) {
	for mask := range 16 {
		keys := shooter.KeyState{
			Left:  mask&1 != 0,
			Right: mask&2 != 0,
			Up:    mask&4 != 0,
			Down:  mask&8 != 0,
		}
		for _, policy := range []shooter.OpposedPolicy{shooter.OpposedCancel, shooter.OpposedPositiveWins} {
			t.Run(fmt.Sprintf("mask=%04b/%s", mask, policy), func(t *testing.T) {
				vel := shooter.MapVelocity(keys, policy)
				assert.Contains(t, []float64{-1, 0, 1}, vel.X)
				assert.Contains(t, []float64{-1, 0, 1}, vel.Y)
			})
		}
	}
}

func TestInputSystemOverwritesVelocity(t *testing.T) {
	w := newWorld(t, testConfig(), &shooter.InputSystem{})
	player, err := shooter.SpawnPlayer(w.storage)
	require.NoError(t, err)

	w.setKeys(shooter.KeyState{Left: true, Up: true})
	w.step()
	assert.Equal(t, shooter.Velocity{X: -1, Y: 1}, w.velocity(player))

	w.setKeys(shooter.KeyState{})
	w.step()
	assert.Equal(t, shooter.Velocity{}, w.velocity(player), "released keys stop the ship")
}

func TestInputSystemLeavesProjectilesAlone(t *testing.T) {
	w := newWorld(t, testConfig(), &shooter.InputSystem{})
	_, err := shooter.SpawnPlayer(w.storage)
	require.NoError(t, err)
	laser := w.spawnLaser(0, 0, 2)

	w.setKeys(shooter.KeyState{Right: true})
	w.step()
	assert.Equal(t, shooter.Velocity{Y: 2}, w.velocity(laser))
}

func TestInputSystemWithoutPlayer(t *testing.T) {
	w := newWorld(t, testConfig(), &shooter.InputSystem{})
	laser := w.spawnLaser(0, 0, 2)

	w.setKeys(shooter.KeyState{Right: true})
	assert.NotPanics(t, w.step)
	assert.Equal(t, shooter.Velocity{Y: 2}, w.velocity(laser))
}
