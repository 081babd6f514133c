package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/wfunc/hangman/game"
	"github.com/wfunc/hangman/input"
	"github.com/wfunc/hangman/logger"
	"github.com/wfunc/hangman/render"
)

// --- Colors ---
var (
	ColBg      = color.RGBA{0x1e, 0x22, 0x2b, 0xff}
	ColInk     = color.RGBA{0xe6, 0xe6, 0xe6, 0xff}
	ColKey     = color.RGBA{0x3a, 0x40, 0x4d, 0xff}
	ColCorrect = color.RGBA{0x3f, 0x9e, 0x5a, 0xff}
	ColWrong   = color.RGBA{0xb5, 0x3f, 0x3f, 0xff}
	ColButton  = color.RGBA{0x4e, 0x6e, 0xb5, 0xff}
)

// Debug font cell size.
const (
	charW = 6
	charH = 16
)

// Game adapts the controller to ebiten: key presses and clicks are the
// input source, the board is drawn every frame.
type Game struct {
	controller *game.Controller
	board      *render.Board
	layout     render.Layout
	keys       []ebiten.Key
}

func NewGame(controller *game.Controller, board *render.Board) *Game {
	return &Game{
		controller: controller,
		board:      board,
		layout:     render.DefaultLayout,
	}
}

func (g *Game) apply(cmd input.Command) {
	switch cmd.Kind {
	case input.KindNewRound:
		g.controller.StartRound()
	case input.KindReveal:
		if err := g.controller.Reveal(); err != nil {
			logger.Log.Warnf("Reveal failed: %v", err)
		}
	case input.KindGuess:
		g.controller.Guess(cmd.Letter)
	}
}

// --- UPDATE ---
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		switch k {
		case ebiten.KeyEnter:
			g.apply(input.Command{Kind: input.KindNewRound})
		case ebiten.KeySpace:
			g.apply(input.Command{Kind: input.KindReveal})
		default:
			if letter, ok := input.Letter(k.String()); ok {
				g.apply(input.Command{Kind: input.KindGuess, Letter: letter})
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if cmd, ok := g.layout.Hit(x, y); ok {
			if cmd.Kind != input.KindGuess || g.board.KeyEnabled(cmd.Letter) {
				g.apply(cmd)
			}
		}
	}
	return nil
}

// --- DRAW ---
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColBg)

	g.drawFigure(screen, 80, 30)
	g.drawWord(screen, 150, 110)

	b := g.board
	ebitenutil.DebugPrintAt(screen, "Hint: "+b.Hint, 150, 20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Misses: %d / %d", b.Misses, b.MaxMisses), 150, 44)
	ebitenutil.DebugPrintAt(screen, "Guessed: "+b.GuessedText(), 150, 68)

	g.drawMessage(screen, 150, 160)
	g.drawButton(screen, g.layout.NewRound, "New word [Enter]")
	g.drawButton(screen, g.layout.Reveal, "Reveal [Space]")
	g.drawKeyboard(screen)
}

func (g *Game) drawFigure(screen *ebiten.Image, x, y float32) {
	// gallows
	vector.StrokeLine(screen, x-50, y+170, x+30, y+170, 3, ColInk, true)
	vector.StrokeLine(screen, x-30, y+170, x-30, y, 3, ColInk, true)
	vector.StrokeLine(screen, x-30, y, x+20, y, 3, ColInk, true)
	vector.StrokeLine(screen, x+20, y, x+20, y+20, 2, ColInk, true)

	parts := g.board.Parts
	shown := func(i int) bool { return i < len(parts) && parts[i] }

	if shown(0) {
		vector.StrokeCircle(screen, x+20, y+35, 15, 2, ColInk, true)
	}
	if shown(1) {
		vector.StrokeLine(screen, x+20, y+50, x+20, y+100, 2, ColInk, true)
	}
	if shown(2) {
		vector.StrokeLine(screen, x+20, y+65, x, y+85, 2, ColInk, true)
	}
	if shown(3) {
		vector.StrokeLine(screen, x+20, y+65, x+40, y+85, 2, ColInk, true)
	}
	if shown(4) {
		vector.StrokeLine(screen, x+20, y+100, x+5, y+135, 2, ColInk, true)
	}
	if shown(5) {
		vector.StrokeLine(screen, x+20, y+100, x+35, y+135, 2, ColInk, true)
	}
}

func (g *Game) drawWord(screen *ebiten.Image, x, y int) {
	const slotW = 14
	for i, slot := range g.board.Slots {
		sx := x + i*slotW
		if slot.Revealed && slot.Letter == ' ' {
			continue
		}
		vector.StrokeLine(screen, float32(sx), float32(y+charH), float32(sx+slotW-4), float32(y+charH), 1, ColInk, false)
		if slot.Revealed {
			ebitenutil.DebugPrintAt(screen, string(slot.Letter), sx+2, y)
		}
	}
}

func (g *Game) drawMessage(screen *ebiten.Image, x, y int) {
	b := g.board
	if b.Message == "" {
		return
	}

	var bg color.Color = ColKey
	switch b.Style {
	case game.StyleWin:
		bg = ColCorrect
	case game.StyleLose:
		bg = ColWrong
	}
	w := len(b.Message)*charW + 12
	vector.DrawFilledRect(screen, float32(x-6), float32(y-4), float32(w), charH+8, bg, false)
	ebitenutil.DebugPrintAt(screen, b.Message, x, y)
}

func (g *Game) drawButton(screen *ebiten.Image, r render.Rect, label string) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), ColButton, false)
	ebitenutil.DebugPrintAt(screen, label, r.X+6, r.Y+(r.H-charH)/2)
}

func (g *Game) drawKeyboard(screen *ebiten.Image) {
	for letter := 'A'; letter <= 'Z'; letter++ {
		r := g.layout.KeyRect(letter)

		var fill color.Color = ColKey
		switch g.board.Keys[letter] {
		case game.MarkCorrect:
			fill = ColCorrect
		case game.MarkWrong:
			fill = ColWrong
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
		if !g.board.KeyEnabled(letter) {
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, ColBg, false)
		}
		ebitenutil.DebugPrintAt(screen, string(letter), r.X+(r.W-charW)/2, r.Y+(r.H-charH)/2)
	}
}

// Layout: render at a fixed logical size and let ebiten scale.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
