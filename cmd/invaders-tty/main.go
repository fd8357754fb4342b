package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/plus3/invaders/shooter"
	"github.com/plus3/invaders/tty"
)

func main() {
	defaults := shooter.DefaultConfig()

	fps := flag.Int("fps", 60, "Simulated frames per second.")
	hold := flag.Duration("hold", tty.DefaultHold, "How long a key counts as held after a press.")
	positiveWins := flag.Bool("positive-wins", false, "Resolve opposing keys to right/up instead of cancelling.")
	ascii := flag.Bool("ascii", false, "Draw the ship as 'A' instead of an emoji.")
	logPath := flag.String("log", "", "Write logs to this file. Logs are discarded when empty.")
	flag.Parse()

	var handler slog.Handler = slog.DiscardHandler
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Error("open log file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		handler = slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	logger := slog.New(handler).With("run", uuid.NewString())

	cfg := defaults
	if *fps > 0 {
		cfg.Timestep = 1 / float64(*fps)
	} else {
		cfg.Timestep = 0
	}
	if *positiveWins {
		cfg.Opposed = shooter.OpposedPositiveWins
	}

	game, err := shooter.New(cfg, logger)
	if err != nil {
		slog.Error("setup failed", "error", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		slog.Error("create screen", "error", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		slog.Error("init screen", "error", err)
		os.Exit(1)
	}

	renderer := tty.NewRenderer(screen)
	if *ascii {
		renderer.ShipGlyph = "A"
	}

	run(screen, game, renderer, tty.NewKeyLatch(*hold), time.Duration(cfg.Timestep*float64(time.Second)))
	screen.Fini()

	stats := game.Stats()
	tally := game.Tally()
	logger.Info("game over", "frames", stats.Frames, "shots", tally.ShotsFired, "despawned", tally.Despawned)
}

// run drives the simulation from a ticker until the player quits. Screen
// events arrive on a separate goroutine and are applied on this one.
func run(screen tcell.Screen, game *shooter.Game, renderer *tty.Renderer, latch *tty.KeyLatch, frame time.Duration) {
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	renderer.Draw(game)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return
				}
				if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
					return
				}
				latch.Handle(ev, time.Now())
			}
		case now := <-ticker.C:
			game.SetKeys(latch.State(now))
			game.Step()
			renderer.Draw(game)
		}
	}
}
