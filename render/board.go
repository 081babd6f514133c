// Package render adapts controller notifications to concrete front-ends.
package render

import (
	"fmt"
	"strings"

	"github.com/wfunc/hangman/game"
)

// Placeholder is shown in place of an empty guessed-letter list.
const Placeholder = "—"

// Board is an in-memory view model of everything the player sees. It
// implements game.Presenter.
type Board struct {
	Slots     []game.Slot
	Hint      string
	MaxMisses int
	Misses    int
	Guessed   []rune
	Parts     []bool
	Message   string
	Style     game.Style
	Keys      map[rune]game.Mark
}

func NewBoard() *Board {
	return &Board{
		MaxMisses: game.MaxMisses,
		Parts:     make([]bool, game.MaxMisses),
		Keys:      make(map[rune]game.Mark),
		Style:     game.StyleNeutral,
	}
}

func (b *Board) Reset(setup game.Setup) {
	if setup.MaxMisses < 0 {
		setup.MaxMisses = 0
	}
	b.Slots = append([]game.Slot(nil), setup.Slots...)
	b.Hint = setup.Hint
	b.MaxMisses = setup.MaxMisses
	b.Misses = 0
	b.Guessed = nil
	b.Parts = make([]bool, setup.MaxMisses)
	b.Message = ""
	b.Style = game.StyleNeutral
	b.Keys = make(map[rune]game.Mark)
}

func (b *Board) RevealLetter(letter rune, slots []int) {
	for _, i := range slots {
		if i >= 0 && i < len(b.Slots) {
			b.Slots[i] = game.Slot{Letter: letter, Revealed: true}
		}
	}
}

func (b *Board) MarkKey(letter rune, mark game.Mark) {
	b.Keys[letter] = mark
}

func (b *Board) ShowPart(part game.Part) {
	if part.Index >= 0 && part.Index < len(b.Parts) {
		b.Parts[part.Index] = true
	}
}

func (b *Board) UpdateStatus(misses int, guessed []rune) {
	b.Misses = misses
	b.Guessed = append([]rune(nil), guessed...)
}

func (b *Board) ShowMessage(text string, style game.Style) {
	b.Message = text
	b.Style = style
}

// KeyEnabled reports whether the on-screen key for letter can still be pressed.
func (b *Board) KeyEnabled(letter rune) bool {
	_, marked := b.Keys[letter]
	return !marked
}

// VisibleParts counts the figure parts currently shown.
func (b *Board) VisibleParts() int {
	n := 0
	for _, shown := range b.Parts {
		if shown {
			n++
		}
	}
	return n
}

// Word renders the slots as "C _ T".
func (b *Board) Word() string {
	cells := make([]string, len(b.Slots))
	for i, slot := range b.Slots {
		if slot.Revealed {
			cells[i] = string(slot.Letter)
		} else {
			cells[i] = "_"
		}
	}
	return strings.Join(cells, " ")
}

// GuessedText joins guessed letters with ", " or returns Placeholder.
func (b *Board) GuessedText() string {
	if len(b.Guessed) == 0 {
		return Placeholder
	}
	letters := make([]string, len(b.Guessed))
	for i, l := range b.Guessed {
		letters[i] = string(l)
	}
	return strings.Join(letters, ", ")
}

func (b *Board) part(i int, s string) string {
	if i < len(b.Parts) && b.Parts[i] {
		return s
	}
	return " "
}

// String draws the board for a terminal.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  +---+\n")
	fmt.Fprintf(&sb, "  |   %s\n", b.part(0, "O"))
	fmt.Fprintf(&sb, "  |  %s%s%s\n", b.part(2, "/"), b.part(1, "|"), b.part(3, `\`))
	fmt.Fprintf(&sb, "  |  %s %s\n", b.part(4, "/"), b.part(5, `\`))
	sb.WriteString(" ===\n\n")
	fmt.Fprintf(&sb, "  %s\n", b.Word())
	fmt.Fprintf(&sb, "  Hint: %s\n", b.Hint)
	fmt.Fprintf(&sb, "  Misses: %d/%d   Guessed: %s\n", b.Misses, b.MaxMisses, b.GuessedText())
	if b.Message != "" {
		fmt.Fprintf(&sb, "  [%s] %s\n", b.Style, b.Message)
	}
	return sb.String()
}
