package shooter

import (
	"fmt"
	"log/slog"

	"github.com/plus3/invaders/ecs"
)

// Game owns the entity store and runs the simulation one frame at a time.
// It is not safe for concurrent use; hosts drive it from a single loop.
type Game struct {
	config    Config
	logger    *slog.Logger
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	keys      *ecs.Singleton[KeyState]
	tally     *ecs.Singleton[Tally]
	entities  *ecs.View[Entity]
	player    ecs.EntityId
}

// Entity is the read-only view hosts use for rendering.
type Entity struct {
	ecs.EntityId
	*Position
	*Velocity
	*Role
	*Sprite
}

type options struct {
	start *[2]float64
}

// Option customises New.
type Option func(*options)

// WithPlayerAt spawns the ship at (x, y) instead of the bottom centre.
func WithPlayerAt(x, y float64) Option {
	return func(o *options) {
		o.start = &[2]float64{x, y}
	}
}

// New validates cfg, builds the world, spawns the player and registers the
// systems in frame order. A nil logger discards output.
func New(cfg Config, logger *slog.Logger, opts ...Option) (*Game, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	// The play-field must be known before the player can be placed.
	storage.AddSingleton(cfg)
	g := &Game{
		config:   cfg,
		logger:   logger,
		storage:  storage,
		keys:     ecs.NewSingleton[KeyState](storage),
		tally:    ecs.NewSingleton[Tally](storage),
		entities: ecs.NewView[Entity](storage),
	}
	ecs.NewSingleton[FireTrigger](storage)

	var err error
	if o.start != nil {
		g.player, err = spawnPlayerAt(storage, o.start[0], o.start[1])
	} else {
		g.player, err = SpawnPlayer(storage)
	}
	if err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}

	g.scheduler = ecs.NewScheduler(storage)
	g.scheduler.Register(&InputSystem{})
	g.scheduler.Register(&MovementSystem{})
	g.scheduler.Register(&BoundarySystem{})
	g.scheduler.Register(&LifetimeSystem{})
	g.scheduler.Register(&FireSystem{})

	pos, _ := g.Player()
	logger.Info("game ready", "config", cfg, "player_x", pos.X, "player_y", pos.Y)
	return g, nil
}

// SetKeys hands the current frame's input to the simulation.
func (g *Game) SetKeys(keys KeyState) {
	*g.keys.Get() = keys
}

// Keys returns the input the next Step will read.
func (g *Game) Keys() KeyState {
	return *g.keys.Get()
}

// Step simulates one fixed-length frame.
func (g *Game) Step() {
	spawned := g.scheduler.Once(g.config.Timestep)
	for _, id := range spawned {
		g.logger.Debug("projectile spawned", "entity", uint64(id))
	}
}

// Steps simulates n frames with the current key state.
func (g *Game) Steps(n int) {
	for range n {
		g.Step()
	}
}

// Config returns the configuration the game was built with.
func (g *Game) Config() Config {
	return g.config
}

// Player returns the ship's position.
func (g *Game) Player() (Position, bool) {
	pos := ecs.ReadComponent[Position](g.storage, g.player)
	if pos == nil {
		return Position{}, false
	}
	return *pos, true
}

// Projectiles returns the number of live lasers.
func (g *Game) Projectiles() int {
	n := 0
	for item := range g.entities.Values() {
		if *item.Role == RoleProjectile {
			n++
		}
	}
	return n
}

// Each calls fn for every entity, in no particular order. fn must not keep
// the pointers past the call.
func (g *Game) Each(fn func(Entity)) {
	for item := range g.entities.Values() {
		fn(item)
	}
}

// Tally returns the running counters.
func (g *Game) Tally() Tally {
	return *g.tally.Get()
}

// Stats returns per-system timing collected by the scheduler.
func (g *Game) Stats() *ecs.SchedulerStats {
	return g.scheduler.Stats()
}

// StorageStats summarises the entity store's archetypes and singletons.
func (g *Game) StorageStats() ecs.StorageStats {
	return g.storage.CollectStats()
}
