package ecs_test

import (
	"testing"

	"github.com/plus3/invaders/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	stats := storage.CollectStats()
	assert.Zero(t, stats.ArchetypeCount)
	assert.Zero(t, stats.TotalEntityCount)
	assert.Zero(t, stats.SingletonCount)

	storage.Spawn(Position{X: 1}, Velocity{DX: 1})
	storage.Spawn(Position{X: 2}, Velocity{DX: 2})
	doomed := storage.Spawn(Position{X: 3}, Name{Value: "x"})
	storage.AddSingleton(Settings{Gravity: 9.8})

	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.ArchetypeCount)
	assert.Equal(t, 3, stats.TotalEntityCount)
	assert.Equal(t, 1, stats.SingletonCount)
	assert.Equal(t, []string{"ecs_test.Settings"}, stats.SingletonTypes)

	counts := map[string]int{}
	for _, arch := range stats.ArchetypeBreakdown {
		require.Len(t, arch.Components, 2)
		counts[arch.Components[0]+","+arch.Components[1]] = arch.EntityCount
	}
	assert.Equal(t, map[string]int{
		"ecs_test.Position,ecs_test.Velocity": 2,
		"ecs_test.Name,ecs_test.Position":     1,
	}, counts)

	storage.Delete(doomed)
	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.ArchetypeCount, "archetypes outlive their entities")
	assert.Equal(t, 2, stats.TotalEntityCount)
}

func TestStorageStatsStableOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{})
	storage.Spawn(Velocity{})
	storage.Spawn(Health{})

	first := storage.CollectStats().ArchetypeBreakdown
	for range 5 {
		assert.Equal(t, first, storage.CollectStats().ArchetypeBreakdown)
	}
}
