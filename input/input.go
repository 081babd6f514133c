// Package input turns raw key presses and typed lines into controller calls.
package input

import (
	"errors"
	"strings"
)

var ErrUnknownCommand = errors.New("unknown command")

// Letter accepts exactly one ASCII letter and returns it upper-cased.
func Letter(raw string) (rune, bool) {
	if len(raw) != 1 {
		return 0, false
	}
	ch := rune(raw[0])
	switch {
	case ch >= 'A' && ch <= 'Z':
		return ch, true
	case ch >= 'a' && ch <= 'z':
		return ch - 'a' + 'A', true
	}
	return 0, false
}

type Kind int

const (
	KindGuess Kind = iota
	KindNewRound
	KindReveal
	KindQuit
)

// Command is one parsed line of terminal input.
type Command struct {
	Kind   Kind
	Letter rune
}

// Parse reads "new", "reveal", "quit" or a single letter.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if letter, ok := Letter(line); ok {
		return Command{Kind: KindGuess, Letter: letter}, nil
	}

	switch strings.ToLower(line) {
	case "new":
		return Command{Kind: KindNewRound}, nil
	case "reveal", "?":
		return Command{Kind: KindReveal}, nil
	case "quit", "exit":
		return Command{Kind: KindQuit}, nil
	}
	return Command{}, ErrUnknownCommand
}
