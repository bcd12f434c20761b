package game

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"guessthelang/internal/config"
	"guessthelang/internal/snippet"
)

const (
	defaultLineDelay   = 1500 * time.Millisecond
	defaultResultDelay = 1500 * time.Millisecond
)

// Session drives the round loop until a break outcome, tracking the
// cumulative score and the stored best.
type Session struct {
	fetch Fetcher
	scr   Screen
	in    Input
	store ScoreStore
	log   *log.Logger
	proc  *snippet.Processor

	revealCfg   revealConfig
	resultDelay time.Duration
	preload     bool

	points    int
	highScore int
}

// NewSession wires a session from its collaborators. cfg is read once
// here; the engine holds no ambient configuration.
func NewSession(cfg *config.Config, fetch Fetcher, scr Screen, in Input, store ScoreStore, logger *log.Logger) *Session {
	return &Session{
		fetch: fetch,
		scr:   scr,
		in:    in,
		store: store,
		log:   logger,
		proc:  snippet.NewProcessor(cfg.HighlightStyle()),
		revealCfg: revealConfig{
			initialDelay: cfg.InitialDelay(),
			lineDelay:    defaultLineDelay,
			shuffle:      cfg.Shuffle,
		},
		resultDelay: defaultResultDelay,
		preload:     cfg.Preload,
	}
}

// Points is the cumulative score of this session.
func (s *Session) Points() int { return s.points }

// HighScore is the best score loaded at startup.
func (s *Session) HighScore() int { return s.highScore }

// BeatHighScore reports whether this session exceeded the stored best.
func (s *Session) BeatHighScore() bool { return s.points > s.highScore }

// Run plays rounds until the player quits, answers wrong, or something
// unrecoverable happens. The high score is written back on every exit
// path; terminal restoration is the caller's unconditional duty.
func (s *Session) Run(ctx context.Context) error {
	highScore, err := s.store.HighScore(ctx)
	if err != nil {
		return fmt.Errorf("loading high score: %w", err)
	}
	s.highScore = highScore

	if s.preload {
		err = s.runPreloading(ctx)
	} else {
		err = s.runSequential(ctx)
	}

	if saveErr := s.saveScore(ctx); saveErr != nil && err == nil {
		err = saveErr
	}
	return err
}

// runSequential fetches each round only after the previous one fully
// resolved and the screen was cleared.
func (s *Session) runSequential(ctx context.Context) error {
	for {
		round, err := s.prepareRound(ctx)
		if err != nil {
			return err
		}
		outcome, err := s.playRound(round, nil)
		if err != nil {
			return err
		}
		if outcome == OutcomeBreak {
			return nil
		}
		s.pause()
		if err := s.scr.Clear(); err != nil {
			return err
		}
	}
}

type playResult struct {
	outcome Outcome
	err     error
}

// runPreloading overlaps the next round's fetch+preprocess with the
// outcome-display delay. The preloaded round only draws once the ready
// signal fires, right after this goroutine clears the screen.
func (s *Session) runPreloading(ctx context.Context) error {
	round, err := s.prepareRound(ctx)
	if err != nil {
		return err
	}
	outcome, err := s.playRound(round, nil)

	for {
		if err != nil {
			return err
		}
		if outcome == OutcomeBreak {
			return nil
		}

		ready := make(chan struct{})
		res := make(chan playResult, 1)
		go func() {
			next, err := s.prepareRound(ctx)
			if err != nil {
				res <- playResult{err: err}
				return
			}
			out, err := s.playRound(next, ready)
			res <- playResult{outcome: out, err: err}
		}()

		s.pause()
		if err := s.scr.Clear(); err != nil {
			return err
		}
		close(ready)

		r := <-res
		outcome, err = r.outcome, r.err
	}
}

// prepareRound fetches and preprocesses until a usable snippet appears.
// Empty-after-preprocessing snippets are retried silently; fetch errors
// terminate the loop.
func (s *Session) prepareRound(ctx context.Context) (Round, error) {
	for {
		snip, err := s.fetch.Next(ctx)
		if err != nil {
			return Round{}, fmt.Errorf("fetching snippet: %w", err)
		}
		lines := s.proc.Process(snip.Raw, snip.Language, s.scr.Width())
		if lines == nil {
			s.log.Debug("snippet unusable after preprocessing, retrying", "language", snip.Language)
			continue
		}
		return Round{
			Lines:   lines,
			Options: BuildOptions(snip.Language),
			Answer:  snip.Language,
		}, nil
	}
}

// pause lets the player register an outcome before the screen changes.
func (s *Session) pause() {
	time.Sleep(s.resultDelay)
}

func (s *Session) saveScore(ctx context.Context) error {
	if !s.BeatHighScore() {
		return nil
	}
	if err := s.store.SetHighScore(ctx, s.points); err != nil {
		return fmt.Errorf("saving high score: %w", err)
	}
	s.log.Info("new high score", "score", s.points, "previous", s.highScore)
	return nil
}
