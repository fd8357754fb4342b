package main

import (
	"flag"
	"log/slog"
	"math"
	"os"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/invaders/shooter"
)

func main() {
	defaults := shooter.DefaultConfig()

	width := flag.Float64("width", defaults.Width, "Play-field width in world units.")
	height := flag.Float64("height", defaults.Height, "Play-field height in world units.")
	speed := flag.Float64("speed", defaults.BaseSpeed, "Ship speed in units per second.")
	tps := flag.Int("tps", 60, "Simulated frames per second.")
	laser := flag.Float64("laser", defaults.LaserVelocityY, "Laser speed as a multiple of ship speed.")
	positiveWins := flag.Bool("positive-wins", false, "Resolve opposing keys to right/up instead of cancelling.")
	scale := flag.Float64("scale", 0.6, "Window size as a fraction of the play-field.")
	verbose := flag.Bool("v", false, "Enable debug logging.")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	cfg := defaults
	cfg.Width, cfg.Height = *width, *height
	cfg.BaseSpeed = *speed
	cfg.LaserVelocityY = *laser
	if *tps > 0 {
		cfg.Timestep = 1 / float64(*tps)
	} else {
		cfg.Timestep = 0
	}
	if *positiveWins {
		cfg.Opposed = shooter.OpposedPositiveWins
	}

	game, err := shooter.New(cfg, logger)
	if err != nil {
		logger.Error("setup failed", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(int(math.Round(cfg.Width**scale)), int(math.Round(cfg.Height**scale)))
	ebiten.SetWindowTitle("Invaders")
	ebiten.SetTPS(*tps)

	app := newApp(game, logger)
	if err := ebiten.RunGame(app); err != nil {
		logger.Error("game exited", "error", err)
		os.Exit(1)
	}
	app.logSummary()
}
