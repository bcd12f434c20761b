package game

import (
	"math/rand/v2"
	"time"

	"guessthelang/internal/snippet"
)

// revealConfig controls the reveal worker's timing and ordering.
type revealConfig struct {
	// initialDelay applies to the first non-blank line revealed.
	initialDelay time.Duration
	// lineDelay applies to every subsequent line.
	lineDelay time.Duration
	// shuffle reveals lines in a random permutation of their indices.
	shuffle bool
}

// reveal discloses lines one at a time until the sequence is exhausted or
// cancel fires. Blank lines are skipped without consuming a timer tick or
// points. Every reveal after the first deducts from the pool and repaints
// the indicator. A screen error aborts the worker; the coordinator still
// joins normally.
func reveal(lines []snippet.Line, pool *pointsPool, scr Screen, cancel <-chan struct{}, cfg revealConfig) error {
	order := make([]snippet.Line, len(lines))
	copy(order, lines)
	if cfg.shuffle {
		rand.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	first := true
	for _, ln := range order {
		if ln.Blank {
			continue
		}

		delay := cfg.lineDelay
		if first {
			delay = cfg.initialDelay
		}

		timer := time.NewTimer(delay)
		select {
		case <-cancel:
			timer.Stop()
			return nil
		case <-timer.C:
		}

		if err := scr.RevealLine(ln.Index, ln.Rendered); err != nil {
			return err
		}
		if !first {
			remaining := pool.Deduct(lineCost)
			if err := scr.UpdatePoints(remaining); err != nil {
				return err
			}
		}
		first = false
	}
	return nil
}
