package game

import (
	"fmt"
	"math"
	"slices"

	"guessthelang/internal/snippet"
)

// Round holds everything needed to play one round.
type Round struct {
	Lines   []snippet.Line
	Options []string
	Answer  string
}

// playRound races the reveal worker against the input listener and
// resolves the outcome. When ready is non-nil the frame is not drawn until
// it fires, so a preloaded round never paints over the previous outcome.
func (s *Session) playRound(r Round, ready <-chan struct{}) (Outcome, error) {
	if ready != nil {
		<-ready
	}

	view := RoundView{
		Lines:       r.Lines,
		Options:     r.Options,
		HighScore:   s.highScore,
		TotalPoints: s.points,
	}
	if err := s.scr.ShowRound(view); err != nil {
		return OutcomeBreak, fmt.Errorf("drawing round: %w", err)
	}

	pool := newPool()
	cancel := newCanceller()

	revealDone := make(chan error, 1)
	go func() {
		revealDone <- reveal(r.Lines, pool, s.scr, cancel.Done(), s.revealCfg)
	}()

	key, inputErr := listen(s.in, cancel)

	// Join the reveal worker before any outcome rendering so terminal
	// writes never interleave.
	revealErr := <-revealDone

	if inputErr != nil {
		return OutcomeBreak, fmt.Errorf("reading input: %w", inputErr)
	}
	if revealErr != nil {
		return OutcomeBreak, fmt.Errorf("revealing code: %w", revealErr)
	}

	switch key {
	case KeyQuit, KeySkip:
		s.log.Info("round abandoned", "key", key)
		return OutcomeBreak, nil
	}

	choice, ok := key.Digit()
	if !ok {
		return OutcomeBreak, fmt.Errorf("listener returned unplayable key %v", key)
	}

	correctIdx := slices.Index(r.Options, r.Answer)
	if correctIdx < 0 {
		// Invariant violation: fail loudly rather than mis-score.
		return OutcomeBreak, fmt.Errorf("correct language %q missing from its option set %v", r.Answer, r.Options)
	}

	if choice-1 == correctIdx {
		awarded := int(math.Round(pool.Remaining()))
		s.points += awarded
		if err := s.scr.MarkCorrect(correctIdx, r.Answer, awarded); err != nil {
			return OutcomeBreak, fmt.Errorf("rendering outcome: %w", err)
		}
		s.log.Info("round won", "language", r.Answer, "awarded", awarded, "total", s.points)
		return OutcomeContinue, nil
	}

	if err := s.scr.MarkIncorrect(choice-1, r.Options[choice-1], correctIdx, r.Answer); err != nil {
		return OutcomeBreak, fmt.Errorf("rendering outcome: %w", err)
	}
	s.log.Info("round lost", "language", r.Answer, "guessed", r.Options[choice-1])
	// Let the player see the corrected option before teardown.
	s.pause()
	return OutcomeBreak, nil
}
