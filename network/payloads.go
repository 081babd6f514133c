package network

// client -> server
type GuessPayload struct {
	Letter string `json:"letter"`
}

// server -> client

// RoundResetPayload lists one entry per slot: "" while hidden, otherwise the
// visible character.
type RoundResetPayload struct {
	Slots     []string `json:"slots"`
	Hint      string   `json:"hint"`
	MaxMisses int      `json:"max_misses"`
}

type LetterRevealedPayload struct {
	Letter string `json:"letter"`
	Slots  []int  `json:"slots"`
}

type KeyMarkedPayload struct {
	Letter string `json:"letter"`
	Mark   string `json:"mark"` // correct | wrong
}

type PartShownPayload struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

type StatusUpdatedPayload struct {
	Misses  int      `json:"misses"`
	Guessed []string `json:"guessed"`
}

type MessageShownPayload struct {
	Text  string `json:"text"`
	Style string `json:"style"` // neutral | win | lose
}

type ErrorPayload struct {
	Message string `json:"message"`
}
