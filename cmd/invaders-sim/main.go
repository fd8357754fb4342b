package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/invaders/shooter"
)

var errBadStart = errors.New("start must be x,y")

// Script is the scripted input replayed by a headless run.
type Script struct {
	Frames    int
	Held      shooter.KeyState
	Keys      string
	FireEvery int
}

// parseKeys reads held keys from a string of w, a, s and d.
func parseKeys(s string) (shooter.KeyState, error) {
	var keys shooter.KeyState
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'a':
			keys.Left = true
		case 'd':
			keys.Right = true
		case 'w':
			keys.Up = true
		case 's':
			keys.Down = true
		case ' ', ',':
		default:
			return shooter.KeyState{}, fmt.Errorf("unknown key %q in %q", r, s)
		}
	}
	return keys, nil
}

func parseStart(s string) ([2]float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return [2]float64{}, fmt.Errorf("%w: %q", errBadStart, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return [2]float64{}, fmt.Errorf("%w: %w", errBadStart, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return [2]float64{}, fmt.Errorf("%w: %w", errBadStart, err)
	}
	return [2]float64{x, y}, nil
}

// keysFor returns the input for frame i. Fire is pressed on every FireEvery-th
// frame, starting with the first.
func (s Script) keysFor(i int) shooter.KeyState {
	keys := s.Held
	keys.Fire = s.FireEvery > 0 && i%s.FireEvery == 0
	return keys
}

// simulate replays script against game and collects the results.
func simulate(game *shooter.Game, script Script, memStats bool) *Report {
	report := &Report{
		Config:         game.Config(),
		Frames:         script.Frames,
		Keys:           script.Keys,
		FireEvery:      script.FireEvery,
		GCPauseMetrics: memStats,
	}
	report.Start, _ = game.Player()
	report.FrameTime.Samples = make([]time.Duration, 0, script.Frames)

	if memStats {
		runtime.GC()
		runtime.ReadMemStats(&report.MemStatsStart)
	}

	begin := time.Now()
	for i := range script.Frames {
		game.SetKeys(script.keysFor(i))
		frameStart := time.Now()
		game.Step()
		report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
	}
	report.WallTime = time.Since(begin)

	if memStats {
		runtime.ReadMemStats(&report.MemStatsEnd)
	}

	report.FrameTime.Finalize()
	report.Final, _ = game.Player()
	report.Tally = game.Tally()
	report.Projectiles = game.Projectiles()
	report.Systems = game.Stats().Systems
	report.Store = game.StorageStats()
	return report
}

func main() {
	defaults := shooter.DefaultConfig()

	frames := flag.Int("frames", 600, "Number of frames to simulate.")
	keys := flag.String("keys", "", "Keys held for the whole run, any of w, a, s, d.")
	fireEvery := flag.Int("fire-every", 0, "Press fire on every Nth frame. Zero never fires.")
	start := flag.String("start", "", "Ship start position as x,y. Defaults to the bottom centre.")
	width := flag.Float64("width", defaults.Width, "Play-field width in world units.")
	height := flag.Float64("height", defaults.Height, "Play-field height in world units.")
	speed := flag.Float64("speed", defaults.BaseSpeed, "Ship speed in units per second.")
	positiveWins := flag.Bool("positive-wins", false, "Resolve opposing keys to right/up instead of cancelling.")
	memStats := flag.Bool("mem", false, "Include memory statistics in the report.")
	verbose := flag.Bool("v", false, "Log every spawned projectile.")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	runID := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).With("run", runID)

	held, err := parseKeys(*keys)
	if err != nil {
		logger.Error("bad -keys", "error", err)
		os.Exit(2)
	}
	if *frames < 0 || *fireEvery < 0 {
		logger.Error("-frames and -fire-every must not be negative")
		os.Exit(2)
	}

	cfg := defaults
	cfg.Width, cfg.Height = *width, *height
	cfg.BaseSpeed = *speed
	if *positiveWins {
		cfg.Opposed = shooter.OpposedPositiveWins
	}

	var opts []shooter.Option
	if *start != "" {
		at, err := parseStart(*start)
		if err != nil {
			logger.Error("bad -start", "error", err)
			os.Exit(2)
		}
		opts = append(opts, shooter.WithPlayerAt(at[0], at[1]))
	}

	game, err := shooter.New(cfg, logger, opts...)
	if err != nil {
		logger.Error("setup failed", "error", err)
		os.Exit(1)
	}

	report := simulate(game, Script{Frames: *frames, Held: held, Keys: *keys, FireEvery: *fireEvery}, *memStats)
	report.RunID = runID

	if err := report.Generate(os.Stdout); err != nil {
		logger.Error("write report", "error", err)
		os.Exit(1)
	}
}
