package shooter

import "github.com/plus3/invaders/ecs"

// Bounds is an axis-aligned rectangle, inclusive on every edge.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Clamp projects a point into the rectangle. Applying it twice gives the
// same result as applying it once.
func (b Bounds) Clamp(x, y float64) (float64, float64) {
	return min(max(x, b.MinX), b.MaxX), min(max(y, b.MinY), b.MaxY)
}

// Contains reports whether the point lies inside the rectangle.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// BoundarySystem keeps the player inside the play-field. It clips position
// only; velocity is left alone so the ship keeps pushing against the wall.
type BoundarySystem struct {
	Config ecs.Singleton[Config]
	Bodies ecs.Query[body]
}

func (s *BoundarySystem) Execute(frame *ecs.UpdateFrame) {
	cfg := s.Config.Get()
	if cfg == nil {
		return
	}

	bounds := cfg.PlayerBounds()
	for item := range s.Bodies.Values() {
		if *item.Role != RolePlayer {
			continue
		}
		item.Position.X, item.Position.Y = bounds.Clamp(item.Position.X, item.Position.Y)
	}
}
