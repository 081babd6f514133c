// Package words holds the catalog of secret words a round is drawn from.
package words

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var (
	ErrEmptyCatalog = errors.New("catalog has no entries")
	ErrInvalidWord  = errors.New("invalid word")
)

// Entry is a secret word and the hint shown alongside it.
type Entry struct {
	Word string
	Hint string
}

// IndexSource yields a uniform index in [0, n). *rand.Rand satisfies it.
type IndexSource interface {
	Intn(n int) int
}

// NewRandomSource returns an IndexSource seeded from the clock.
func NewRandomSource() IndexSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Catalog is an immutable, non-empty list of entries.
type Catalog struct {
	entries []Entry
}

// NewCatalog validates and normalizes entries. Words are upper-cased and may
// contain letters A-Z separated by single spaces.
func NewCatalog(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	normalized := make([]Entry, 0, len(entries))
	for i, e := range entries {
		word, err := normalize(e.Word)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		normalized = append(normalized, Entry{Word: word, Hint: strings.TrimSpace(e.Hint)})
	}
	return &Catalog{entries: normalized}, nil
}

func normalize(word string) (string, error) {
	word = strings.ToUpper(strings.TrimSpace(word))
	if word == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidWord)
	}

	prevSpace := false
	for _, r := range word {
		switch {
		case r >= 'A' && r <= 'Z':
			prevSpace = false
		case r == ' ':
			if prevSpace {
				return "", fmt.Errorf("%w: %q has repeated spaces", ErrInvalidWord, word)
			}
			prevSpace = true
		default:
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidWord, word, r)
		}
	}
	return word, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the catalog.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Pick draws one entry uniformly with replacement.
func (c *Catalog) Pick(src IndexSource) Entry {
	return c.entries[src.Intn(len(c.entries))]
}
