package game

// Mark is how a letter key is styled once it has been guessed.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkWrong   Mark = "wrong"
)

// Style tags a status message.
type Style string

const (
	StyleNeutral Style = "neutral"
	StyleWin     Style = "win"
	StyleLose    Style = "lose"
)

// Slot is one position of the word display. Letter is zero while hidden.
type Slot struct {
	Letter   rune
	Revealed bool
}

// Setup describes a freshly started round to the presentation layer.
type Setup struct {
	Slots     []Slot
	Hint      string
	MaxMisses int
}

// Presenter receives one-way notifications after each state change.
// Implementations must not call back into the controller.
type Presenter interface {
	// Reset rebuilds the board: blanks, hint, hidden figure, enabled keys.
	Reset(setup Setup)
	RevealLetter(letter rune, slots []int)
	MarkKey(letter rune, mark Mark)
	ShowPart(part Part)
	UpdateStatus(misses int, guessed []rune)
	ShowMessage(text string, style Style)
}
