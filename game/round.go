package game

// MaxMisses is the number of wrong guesses that loses a round. It always
// equals len(Parts).
const MaxMisses = 6

// Phase identifies where a round is in its lifecycle.
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseInProgress Phase = "in_progress"
	PhaseWon        Phase = "won"
	PhaseLost       Phase = "lost"
	PhaseRevealed   Phase = "revealed"
)

// Terminal reports whether no further guesses are accepted.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost || p == PhaseRevealed
}

// Part is one piece of the stick figure.
type Part struct {
	Index int
	Name  string
}

// Parts are revealed in this order, one per miss.
var Parts = [MaxMisses]Part{
	{0, "head"},
	{1, "body"},
	{2, "arm-left"},
	{3, "arm-right"},
	{4, "leg-left"},
	{5, "leg-right"},
}

// Round is the state of a single play-through. The controller owns it;
// everyone else gets a copy from Snapshot.
type Round struct {
	Answer  string
	Hint    string
	Guessed []rune // in the order attempted
	Misses  int
	Over    bool
	Phase   Phase
}

func newRound(answer, hint string) *Round {
	return &Round{
		Answer: answer,
		Hint:   hint,
		Phase:  PhaseNotStarted,
	}
}

// HasGuessed reports whether letter was already attempted.
func (r *Round) HasGuessed(letter rune) bool {
	for _, g := range r.Guessed {
		if g == letter {
			return true
		}
	}
	return false
}

// Positions returns the slot indexes holding letter.
func (r *Round) Positions(letter rune) []int {
	var positions []int
	for i, ch := range []rune(r.Answer) {
		if ch == letter {
			positions = append(positions, i)
		}
	}
	return positions
}

// Letters returns the distinct letters of the answer in first-seen order.
func (r *Round) Letters() []rune {
	var letters []rune
	seen := make(map[rune]bool)
	for _, ch := range r.Answer {
		if ch == ' ' || seen[ch] {
			continue
		}
		seen[ch] = true
		letters = append(letters, ch)
	}
	return letters
}

// Solved reports whether every letter of the answer has been guessed.
func (r *Round) Solved() bool {
	for _, ch := range r.Letters() {
		if !r.HasGuessed(ch) {
			return false
		}
	}
	return true
}

func (r *Round) clone() Round {
	c := *r
	c.Guessed = append([]rune(nil), r.Guessed...)
	return c
}
