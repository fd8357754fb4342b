package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/template"
	"time"

	"github.com/plus3/invaders/ecs"
	"github.com/plus3/invaders/shooter"
)

type Report struct {
	// Run
	RunID     string
	Config    shooter.Config
	Frames    int
	Keys      string
	FireEvery int

	// Results
	Start          shooter.Position
	Final          shooter.Position
	Tally          shooter.Tally
	Projectiles    int
	WallTime       time.Duration
	FrameTime      Stats
	Systems        []ecs.SystemStats
	Store          ecs.StorageStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min, s.Max = s.Samples[0], s.Samples[0]
	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Invaders Simulation Report

## Run
- **Run ID:** {{.RunID}}
- **Play-field:** {{f2 .Config.Width}} x {{f2 .Config.Height}}
- **Frames:** {{.Frames}} at {{.Config.Timestep | seconds}} per frame ({{frameTime .Frames .Config.Timestep}} simulated)
- **Held keys:** {{if .Keys}}{{.Keys}}{{else}}none{{end}}
- **Fire every:** {{if .FireEvery}}{{.FireEvery}} frames{{else}}never{{end}}
- **Opposed keys:** {{.Config.Opposed}}

## Ship
- **Start:** ({{f2 .Start.X}}, {{f2 .Start.Y}})
- **Final:** ({{f2 .Final.X}}, {{f2 .Final.Y}})

## Lasers
- **Shots fired:** {{.Tally.ShotsFired}}
- **Despawned:** {{.Tally.Despawned}}
- **Still in flight:** {{.Projectiles}}

## Timing
- **Wall time:** {{.WallTime}}
- **Frame:** avg {{.FrameTime.Avg}}, min {{.FrameTime.Min}}, max {{.FrameTime.Max}}
{{range .Systems}}- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Entity Store
- **Archetypes:** {{.Store.ArchetypeCount}}
- **Entities:** {{.Store.TotalEntityCount}}
{{range .Store.ArchetypeBreakdown}}- {{join .Components ", "}}: {{.EntityCount}}
{{end}}- **Singletons:** {{join .Store.SingletonTypes ", "}}
{{if .GCPauseMetrics}}
## Memory (Raw Bytes)
- Heap Alloc:  {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc: {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:      {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
- GC Pause:    {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

var reportFuncs = template.FuncMap{
	"join": strings.Join,
	"f2": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
	"seconds": func(v float64) string {
		return time.Duration(v * float64(time.Second)).String()
	},
	"frameTime": func(frames int, step float64) string {
		return time.Duration(float64(frames) * step * float64(time.Second)).String()
	},
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

var reportTmpl = template.Must(template.New("report").Funcs(reportFuncs).Parse(reportTemplate))

func (r *Report) Generate(w io.Writer) error {
	return reportTmpl.Execute(w, r)
}
