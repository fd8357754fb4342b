package tty_test

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/plus3/invaders/shooter"
	"github.com/plus3/invaders/tty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T, w, h int) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, row, width int) string {
	var b strings.Builder
	for col := 0; col < width; col++ {
		r, _, _, _ := screen.GetContent(col, row)
		b.WriteRune(r)
	}
	return b.String()
}

func TestRendererCell(t *testing.T) {
	screen := newSimScreen(t, 40, 21)
	r := tty.NewRenderer(screen)
	cfg := shooter.DefaultConfig()

	tests := []struct {
		name     string
		x, y     float64
		col, row int
		ok       bool
	}{
		{"centre", 0, 0, 20, 11, true},
		{"top left corner", -450, 600, 0, 1, true},
		{"bottom right corner", 450, -600, 39, 20, true},
		{"right of the field", 451, 0, 0, 0, false},
		{"above the field", 0, 601, 0, 0, false},
		{"below the field", 0, -601, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row, ok := r.Cell(cfg, tt.x, tt.y)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.col, col)
				assert.Equal(t, tt.row, row)
			}
		})
	}
}

func TestRendererDrawsShipAndLaser(t *testing.T) {
	screen := newSimScreen(t, 40, 21)
	r := tty.NewRenderer(screen)

	game, err := shooter.New(shooter.DefaultConfig(), nil)
	require.NoError(t, err)
	game.SetKeys(shooter.KeyState{Fire: true})
	game.Step()
	r.Draw(game)

	// Ship at (0, -549) lands in the bottom row; the wide glyph starts one
	// column left of centre.
	ship, _, _, _ := screen.GetContent(19, 20)
	assert.Equal(t, []rune(tty.DefaultShipGlyph)[0], ship)

	// Laser at (0, -503).
	laser, _, _, _ := screen.GetContent(20, 19)
	assert.Equal(t, '|', laser)

	assert.True(t, strings.HasPrefix(rowText(screen, 0, 40), "shots 1  lasers 1  frame 1"))
}

func TestRendererClearsBetweenFrames(t *testing.T) {
	screen := newSimScreen(t, 40, 21)
	r := tty.NewRenderer(screen)
	r.ShipGlyph = "A"

	game, err := shooter.New(shooter.DefaultConfig(), nil, shooter.WithPlayerAt(0, 0))
	require.NoError(t, err)
	r.Draw(game)

	ch, _, _, _ := screen.GetContent(20, 11)
	require.Equal(t, 'A', ch)

	game.SetKeys(shooter.KeyState{Up: true})
	game.Steps(60)
	r.Draw(game)

	ch, _, _, _ = screen.GetContent(20, 11)
	assert.Equal(t, ' ', ch, "old ship cell cleared")
}

func TestHUDTruncates(t *testing.T) {
	game, err := shooter.New(shooter.DefaultConfig(), nil)
	require.NoError(t, err)

	line := tty.HUD(game, 12)
	assert.LessOrEqual(t, runewidth.StringWidth(line), 12)
	assert.True(t, strings.HasSuffix(line, "…"))
	assert.True(t, strings.HasPrefix(line, "shots 0"))
}
