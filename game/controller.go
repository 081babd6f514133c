// Package game implements the hangman round controller.
package game

import (
	"errors"
	"fmt"

	"github.com/wfunc/hangman/logger"
	"github.com/wfunc/hangman/state"
	"github.com/wfunc/hangman/words"
)

// ErrNoRound is returned by Reveal before the first StartRound.
var ErrNoRound = errors.New("no round in progress")

// Result is the effect a guess had on the round.
type Result int

const (
	ResultIgnored Result = iota
	ResultHit
	ResultMiss
)

func (r Result) String() string {
	switch r {
	case ResultHit:
		return "hit"
	case ResultMiss:
		return "miss"
	default:
		return "ignored"
	}
}

const (
	msgReady  = "Ready when you are."
	msgWin    = "You saved them. Nicely done!"
	msgLose   = "Out of guesses. The word was %s."
	msgReveal = "The word is %s. Try a new one!"
)

type phaseState struct {
	state.BaseState
}

func (p *phaseState) OnEnter() {
	logger.Log.Debugf("round entered phase %s", p.ID)
}

func newPhase(p Phase) *phaseState {
	return &phaseState{BaseState: state.BaseState{ID: string(p)}}
}

// Controller owns the active round and drives a Presenter. It is not safe
// for concurrent use.
type Controller struct {
	catalog   *words.Catalog
	source    words.IndexSource
	presenter Presenter
	round     *Round
	machine   *state.BaseStateMachine
	phases    map[Phase]*phaseState
}

// NewController creates a controller in the not-started phase. Call
// StartRound to begin playing.
func NewController(catalog *words.Catalog, source words.IndexSource, presenter Presenter) *Controller {
	c := &Controller{
		catalog:   catalog,
		source:    source,
		presenter: presenter,
		phases:    make(map[Phase]*phaseState),
	}
	for _, p := range []Phase{PhaseNotStarted, PhaseInProgress, PhaseWon, PhaseLost, PhaseRevealed} {
		c.phases[p] = newPhase(p)
	}

	c.machine = state.NewBaseStateMachine(c.phases[PhaseNotStarted])
	c.allow(PhaseNotStarted, PhaseInProgress)
	c.allow(PhaseInProgress, PhaseInProgress, PhaseWon, PhaseLost, PhaseRevealed)
	c.allow(PhaseWon, PhaseInProgress)
	c.allow(PhaseLost, PhaseInProgress)
	c.allow(PhaseRevealed, PhaseInProgress)

	return c
}

func (c *Controller) allow(from Phase, to ...Phase) {
	for _, t := range to {
		c.machine.AddTransition(c.phases[from], c.phases[t], nil)
	}
}

func (c *Controller) enter(p Phase) {
	if err := c.machine.ChangeState(c.phases[p]); err != nil {
		logger.Log.Errorf("round phase %s -> %s: %v", c.Phase(), p, err)
		return
	}
	c.round.Phase = p
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return Phase(c.machine.GetCurrentState().GetID())
}

// Snapshot returns a copy of the current round. Before the first round it
// returns a zero Round in the not-started phase.
func (c *Controller) Snapshot() Round {
	if c.round == nil {
		return Round{Phase: PhaseNotStarted}
	}
	return c.round.clone()
}

// StartRound draws a new word and replaces the current round.
func (c *Controller) StartRound() {
	entry := c.catalog.Pick(c.source)
	c.round = newRound(entry.Word, entry.Hint)
	c.enter(PhaseInProgress)

	slots := make([]Slot, 0, len(entry.Word))
	for _, ch := range entry.Word {
		if ch == ' ' {
			slots = append(slots, Slot{Letter: ' ', Revealed: true})
			continue
		}
		slots = append(slots, Slot{})
	}

	c.presenter.Reset(Setup{Slots: slots, Hint: entry.Hint, MaxMisses: MaxMisses})
	c.presenter.UpdateStatus(0, nil)
	c.presenter.ShowMessage(msgReady, StyleNeutral)
}

// Guess applies a single uppercase letter. Guesses before a round, after it
// ends, or repeating an earlier letter are ignored.
func (c *Controller) Guess(letter rune) Result {
	r := c.round
	if r == nil || r.Over || r.HasGuessed(letter) {
		return ResultIgnored
	}

	r.Guessed = append(r.Guessed, letter)

	result := ResultHit
	if positions := r.Positions(letter); len(positions) > 0 {
		c.presenter.MarkKey(letter, MarkCorrect)
		c.presenter.RevealLetter(letter, positions)
	} else {
		result = ResultMiss
		r.Misses++
		c.presenter.MarkKey(letter, MarkWrong)
		if r.Misses <= len(Parts) {
			c.presenter.ShowPart(Parts[r.Misses-1])
		}
	}
	c.presenter.UpdateStatus(r.Misses, c.guessed())

	switch {
	case r.Solved():
		r.Over = true
		c.enter(PhaseWon)
		c.presenter.ShowMessage(msgWin, StyleWin)
	case r.Misses >= MaxMisses:
		r.Over = true
		c.enter(PhaseLost)
		c.presenter.ShowMessage(fmt.Sprintf(msgLose, r.Answer), StyleLose)
	}
	return result
}

// Reveal ends the round and shows the whole word. Calling it on a finished
// round leaves the phase alone but repeats the notifications.
func (c *Controller) Reveal() error {
	r := c.round
	if r == nil {
		return ErrNoRound
	}

	for _, ch := range r.Letters() {
		if !r.HasGuessed(ch) {
			r.Guessed = append(r.Guessed, ch)
		}
	}
	r.Over = true
	if c.Phase() == PhaseInProgress {
		c.enter(PhaseRevealed)
	}

	for _, ch := range r.Letters() {
		c.presenter.RevealLetter(ch, r.Positions(ch))
	}
	c.presenter.UpdateStatus(r.Misses, c.guessed())
	c.presenter.ShowMessage(fmt.Sprintf(msgReveal, r.Answer), StyleNeutral)
	return nil
}

func (c *Controller) guessed() []rune {
	return append([]rune(nil), c.round.Guessed...)
}
