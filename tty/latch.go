// Package tty adapts the shooter simulation to a character terminal through
// tcell.
package tty

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/invaders/shooter"
)

// DefaultHold covers the gap between a terminal's key auto-repeat events.
const DefaultHold = 120 * time.Millisecond

type control int

const (
	controlLeft control = iota
	controlRight
	controlUp
	controlDown
	controlFire
	controlCount
)

// KeyLatch turns key press events into a held-key state. Terminals report
// presses only, so a key counts as held until Hold has passed since its last
// press. A KeyLatch is not safe for concurrent use.
type KeyLatch struct {
	Hold    time.Duration
	pressed [controlCount]time.Time
}

func NewKeyLatch(hold time.Duration) *KeyLatch {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &KeyLatch{Hold: hold}
}

func controlFor(ev *tcell.EventKey) (control, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return controlLeft, true
	case tcell.KeyRight:
		return controlRight, true
	case tcell.KeyUp:
		return controlUp, true
	case tcell.KeyDown:
		return controlDown, true
	case tcell.KeyRune:
	default:
		return 0, false
	}

	switch ev.Rune() {
	case 'a', 'A':
		return controlLeft, true
	case 'd', 'D':
		return controlRight, true
	case 'w', 'W':
		return controlUp, true
	case 's', 'S':
		return controlDown, true
	case ' ':
		return controlFire, true
	}
	return 0, false
}

// Handle records a key event at now and reports whether it maps to a control.
func (l *KeyLatch) Handle(ev *tcell.EventKey, now time.Time) bool {
	c, ok := controlFor(ev)
	if !ok {
		return false
	}
	l.pressed[c] = now
	return true
}

func (l *KeyLatch) held(c control, now time.Time) bool {
	at := l.pressed[c]
	if at.IsZero() {
		return false
	}
	return now.Sub(at) < l.Hold
}

// State returns the keys considered held at now.
func (l *KeyLatch) State(now time.Time) shooter.KeyState {
	return shooter.KeyState{
		Left:  l.held(controlLeft, now),
		Right: l.held(controlRight, now),
		Up:    l.held(controlUp, now),
		Down:  l.held(controlDown, now),
		Fire:  l.held(controlFire, now),
	}
}

// Reset forgets every press.
func (l *KeyLatch) Reset() {
	l.pressed = [controlCount]time.Time{}
}
