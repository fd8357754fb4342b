package tty

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/plus3/invaders/shooter"
)

const (
	DefaultShipGlyph  = "🚀"
	DefaultLaserGlyph = "|"
)

// Renderer draws the play-field onto a tcell screen. Row 0 holds the HUD and
// the remaining rows map linearly onto the field's height.
type Renderer struct {
	screen     tcell.Screen
	ShipGlyph  string
	LaserGlyph string
	ShipStyle  tcell.Style
	LaserStyle tcell.Style
	HUDStyle   tcell.Style
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:     screen,
		ShipGlyph:  DefaultShipGlyph,
		LaserGlyph: DefaultLaserGlyph,
		ShipStyle:  tcell.StyleDefault.Foreground(tcell.ColorAqua),
		LaserStyle: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		HUDStyle:   tcell.StyleDefault.Foreground(tcell.ColorSilver),
	}
}

func scale(offset, span float64, cells int) (int, bool) {
	if offset < 0 || offset > span || cells <= 0 {
		return 0, false
	}
	cell := int(math.Floor(offset / span * float64(cells)))
	return min(cell, cells-1), true
}

// Cell maps a world position to a screen cell. It reports false when the
// position lies outside the play-field or the screen has no room for it.
func (r *Renderer) Cell(cfg shooter.Config, x, y float64) (col, row int, ok bool) {
	w, h := r.screen.Size()

	col, ok = scale(x+cfg.Width/2, cfg.Width, w)
	if !ok {
		return 0, 0, false
	}
	row, ok = scale(cfg.Height/2-y, cfg.Height, h-1)
	if !ok {
		return 0, 0, false
	}
	return col, row + 1, true
}

// putGlyph draws glyph centred on col. Wide glyphs take the column to the
// left of col as well.
func (r *Renderer) putGlyph(col, row int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	width := runewidth.StringWidth(glyph)
	if width > 1 {
		col -= width / 2
	}
	col = max(col, 0)

	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(col, row, runes[0], combc, style)
}

func (r *Renderer) putText(col, row int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	for _, ch := range s {
		if col >= w {
			return
		}
		r.screen.SetContent(col, row, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}

// HUD formats the status line for game, truncated to width cells.
func HUD(game *shooter.Game, width int) string {
	tally := game.Tally()
	line := fmt.Sprintf("shots %d  lasers %d  frame %d  [wasd/arrows move, space fire, q quit]",
		tally.ShotsFired, game.Projectiles(), game.Stats().Frames)
	return runewidth.Truncate(line, width, "…")
}

// Draw renders one frame of game and shows it.
func (r *Renderer) Draw(game *shooter.Game) {
	r.screen.Clear()
	w, _ := r.screen.Size()
	cfg := game.Config()

	r.putText(0, 0, HUD(game, w), r.HUDStyle)

	type sprite struct {
		kind shooter.SpriteKind
		z    float64
		col  int
		row  int
	}
	var sprites []sprite
	game.Each(func(e shooter.Entity) {
		col, row, ok := r.Cell(cfg, e.Position.X, e.Position.Y)
		if !ok {
			return
		}
		sprites = append(sprites, sprite{kind: e.Sprite.Kind, z: e.Position.Z, col: col, row: row})
	})

	// Deeper sprites are drawn last so they end up on top.
	slices.SortStableFunc(sprites, func(a, b sprite) int { return cmp.Compare(a.z, b.z) })

	for _, s := range sprites {
		switch s.kind {
		case shooter.SpriteShip:
			r.putGlyph(s.col, s.row, r.ShipGlyph, r.ShipStyle)
		case shooter.SpriteLaser:
			r.putGlyph(s.col, s.row, r.LaserGlyph, r.LaserStyle)
		}
	}

	r.screen.Show()
}
