package ecs_test

import (
	"testing"

	"github.com/plus3/invaders/ecs"
)

type posVel struct {
	*Position
	*Velocity
}

func populated(n int) *ecs.Storage {
	storage := ecs.NewStorage(newTestRegistry())
	for i := range n {
		storage.Spawn(Position{X: float64(i)}, Velocity{DX: 1, DY: 1})
	}
	return storage
}

func BenchmarkSpawn(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		storage.Spawn(Position{X: 1.0, Y: 2.0}, Velocity{DX: 0.5, DY: 0.5})
	}
}

// Spawn and delete in lockstep so the archetype recycles a single slot.
func BenchmarkSpawnDeleteChurn(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := storage.Spawn(Position{X: 1.0, Y: 2.0}, Velocity{DX: 0.5, DY: 0.5})
		storage.Delete(id)
	}
}

func BenchmarkGetComponent(b *testing.B) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1.0, Y: 2.0}, Velocity{DX: 0.5, DY: 0.5})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ecs.ReadComponent[Position](storage, id)
	}
}

func BenchmarkViewIter(b *testing.B) {
	storage := populated(1000)
	view := ecs.NewView[posVel](storage)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, pv := range view.Iter() {
			pv.Position.X += pv.Velocity.DX
		}
	}
}

func BenchmarkQueryIter(b *testing.B) {
	storage := populated(1000)
	query := ecs.NewQuery[posVel](storage)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		query.Execute()
		for _, pv := range query.Iter() {
			pv.Position.X += pv.Velocity.DX
		}
	}
}

func BenchmarkSchedulerOnce(b *testing.B) {
	storage := populated(1000)
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&MovementSystem{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scheduler.Once(1.0 / 60.0)
	}
}
