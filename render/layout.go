package render

import "github.com/wfunc/hangman/input"

// Rect is an axis-aligned screen rectangle in pixels.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout positions the on-screen keyboard and buttons.
type Layout struct {
	KeyW, KeyH int
	Gap        int
	OriginX    int
	OriginY    int
	PerRow     int
	NewRound   Rect
	Reveal     Rect
}

// DefaultLayout fits a 480x320 logical screen.
var DefaultLayout = Layout{
	KeyW:     30,
	KeyH:     24,
	Gap:      6,
	OriginX:  6,
	OriginY:  250,
	PerRow:   13,
	NewRound: Rect{X: 150, Y: 204, W: 130, H: 24},
	Reveal:   Rect{X: 300, Y: 204, W: 130, H: 24},
}

// KeyRect returns the bounds of the key for an uppercase letter.
func (l Layout) KeyRect(letter rune) Rect {
	i := int(letter - 'A')
	row, col := i/l.PerRow, i%l.PerRow
	return Rect{
		X: l.OriginX + col*(l.KeyW+l.Gap),
		Y: l.OriginY + row*(l.KeyH+l.Gap),
		W: l.KeyW,
		H: l.KeyH,
	}
}

// Hit maps a click to a command.
func (l Layout) Hit(x, y int) (input.Command, bool) {
	switch {
	case l.NewRound.Contains(x, y):
		return input.Command{Kind: input.KindNewRound}, true
	case l.Reveal.Contains(x, y):
		return input.Command{Kind: input.KindReveal}, true
	}
	for letter := 'A'; letter <= 'Z'; letter++ {
		if l.KeyRect(letter).Contains(x, y) {
			return input.Command{Kind: input.KindGuess, Letter: letter}, true
		}
	}
	return input.Command{}, false
}
