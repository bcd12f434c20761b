// Package game implements the round engine: the timed line revealer, the
// blocking input listener, the coordinator that races them, and the
// session loop that chains rounds.
package game

import (
	"context"

	"guessthelang/internal/snippet"
)

// Key is one of the inputs a round reacts to. Anything else is ignored by
// the listener.
type Key int

const (
	KeyDigit1 Key = iota
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyQuit
	KeySkip
)

// Digit returns the 1-based choice for digit keys.
func (k Key) Digit() (int, bool) {
	if k >= KeyDigit1 && k <= KeyDigit4 {
		return int(k-KeyDigit1) + 1, true
	}
	return 0, false
}

func (k Key) String() string {
	switch k {
	case KeyDigit1, KeyDigit2, KeyDigit3, KeyDigit4:
		d, _ := k.Digit()
		return string(rune('0' + d))
	case KeyQuit:
		return "quit"
	case KeySkip:
		return "skip"
	default:
		return "unknown"
	}
}

// Outcome is the result of one round.
type Outcome int

const (
	// OutcomeContinue keeps the session going.
	OutcomeContinue Outcome = iota
	// OutcomeBreak stops the session (quit, skip or a wrong answer).
	OutcomeBreak
)

func (o Outcome) String() string {
	if o == OutcomeContinue {
		return "continue"
	}
	return "break"
}

// RoundView is everything the screen needs to draw a fresh round frame.
type RoundView struct {
	Lines       []snippet.Line
	Options     []string
	HighScore   int
	TotalPoints int
}

// Screen is the terminal collaborator the engine draws through. All
// methods may be called from the coordinator or the reveal worker; the
// implementation serializes access to the output handle.
type Screen interface {
	// ShowRound draws the round frame: score header, dotted code
	// preview, prompt and option list.
	ShowRound(v RoundView) error
	// RevealLine replaces the dotted preview of one line with its
	// highlighted text, in place.
	RevealLine(index int, rendered string) error
	// UpdatePoints repaints the available-points indicator.
	UpdatePoints(remaining float64) error
	// MarkCorrect repaints the matched option as the (chosen) answer.
	MarkCorrect(optionIndex int, label string, awarded int) error
	// MarkIncorrect repaints the chosen option as wrong and the true
	// answer as correct.
	MarkIncorrect(chosenIndex int, chosenLabel string, correctIndex int, correctLabel string) error
	// Clear wipes the screen and homes the cursor between rounds.
	Clear() error
	// Width is the usable terminal width in columns.
	Width() int
}

// Input blocks until the player presses a relevant key, discarding
// anything queued before the call.
type Input interface {
	ReadKey() (Key, error)
}

// Fetcher supplies raw snippets for rounds.
type Fetcher interface {
	Next(ctx context.Context) (snippet.Snippet, error)
}

// ScoreStore persists the best score across runs.
type ScoreStore interface {
	HighScore(ctx context.Context) (int, error)
	SetHighScore(ctx context.Context, score int) error
}
