package shooter

import "github.com/plus3/invaders/ecs"

// LifetimeSystem removes auto-despawning entities that have left through the
// top of the play-field. Only the top edge is checked. Removal is queued and
// applied when the frame is flushed, before the next frame's queries run.
type LifetimeSystem struct {
	Config ecs.Singleton[Config]
	Tally  ecs.Singleton[Tally]
	Bodies ecs.Query[body]
}

func (s *LifetimeSystem) Execute(frame *ecs.UpdateFrame) {
	cfg := s.Config.Get()
	if cfg == nil {
		return
	}

	top := cfg.Top()
	for item := range s.Bodies.Values() {
		if !item.MovementPolicy.AutoDespawn || item.Position.Y <= top {
			continue
		}
		frame.Commands.Delete(item.EntityId)
		if tally := s.Tally.Get(); tally != nil {
			tally.Despawned++
		}
	}
}
