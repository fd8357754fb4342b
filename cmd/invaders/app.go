package main

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/invaders/shooter"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.RGBA{10, 10, 10, 255}
	shipColor       = color.RGBA{120, 200, 255, 255}
	laserColor      = color.RGBA{255, 90, 90, 255}
	hudColor        = color.RGBA{200, 200, 200, 255}
)

const (
	laserWidth  = 6
	laserHeight = 24
)

// App adapts a shooter.Game to ebiten's Update/Draw/Layout loop.
type App struct {
	game   *shooter.Game
	logger *slog.Logger
	face   font.Face
}

func newApp(game *shooter.Game, logger *slog.Logger) *App {
	return &App{
		game:   game,
		logger: logger,
		face:   basicfont.Face7x13,
	}
}

func pollKeys() shooter.KeyState {
	pressed := func(keys ...ebiten.Key) bool {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				return true
			}
		}
		return false
	}

	return shooter.KeyState{
		Left:  pressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right: pressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Up:    pressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:  pressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Fire:  pressed(ebiten.KeySpace),
	}
}

func (a *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	a.game.SetKeys(pollKeys())
	a.game.Step()
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	cfg := a.game.Config()
	ship := cfg.PlayerHalfExtent

	a.game.Each(func(e shooter.Entity) {
		// World Y grows upward with the origin at the centre; screen Y grows
		// downward from the top-left corner.
		sx := float32(e.Position.X + cfg.Width/2)
		sy := float32(cfg.Height/2 - e.Position.Y)

		switch e.Sprite.Kind {
		case shooter.SpriteShip:
			w, h := float32(2*ship.X), float32(2*ship.Y)
			vector.DrawFilledRect(screen, sx-w/2, sy-h/2, w, h, shipColor, false)
		case shooter.SpriteLaser:
			vector.DrawFilledRect(screen, sx-laserWidth/2, sy-laserHeight/2, laserWidth, laserHeight, laserColor, false)
		}
	})

	tally := a.game.Tally()
	hud := fmt.Sprintf("shots %d  lasers %d  tps %.0f", tally.ShotsFired, a.game.Projectiles(), ebiten.ActualTPS())
	text.Draw(screen, hud, a.face, 8, 20, hudColor)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := a.game.Config()
	return int(cfg.Width), int(cfg.Height)
}

func (a *App) logSummary() {
	stats := a.game.Stats()
	tally := a.game.Tally()
	a.logger.Info("game over",
		"frames", stats.Frames,
		"shots", tally.ShotsFired,
		"despawned", tally.Despawned,
	)
	for _, system := range stats.Systems {
		a.logger.Debug("system timing",
			"system", system.Name,
			"avg", system.AvgDuration,
			"max", system.MaxDuration,
		)
	}
}
