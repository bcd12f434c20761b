package game

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"guessthelang/internal/config"
	"guessthelang/internal/snippet"
)

// fakeScreen records every rendering call in order.
type fakeScreen struct {
	mu       sync.Mutex
	events   []string
	revealed []int
	points   []float64
	views    []RoundView

	revealErr error
	onReveal  func(count int)
}

func (f *fakeScreen) record(ev string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
}

func (f *fakeScreen) ShowRound(v RoundView) error {
	f.mu.Lock()
	f.views = append(f.views, v)
	f.events = append(f.events, "show")
	f.mu.Unlock()
	return nil
}

func (f *fakeScreen) RevealLine(index int, rendered string) error {
	if f.revealErr != nil {
		return f.revealErr
	}
	f.mu.Lock()
	f.revealed = append(f.revealed, index)
	f.events = append(f.events, "reveal")
	count := len(f.revealed)
	hook := f.onReveal
	f.mu.Unlock()
	if hook != nil {
		hook(count)
	}
	return nil
}

func (f *fakeScreen) UpdatePoints(remaining float64) error {
	f.mu.Lock()
	f.points = append(f.points, remaining)
	f.events = append(f.events, "points")
	f.mu.Unlock()
	return nil
}

func (f *fakeScreen) MarkCorrect(optionIndex int, label string, awarded int) error {
	f.record("correct")
	return nil
}

func (f *fakeScreen) MarkIncorrect(chosenIndex int, chosenLabel string, correctIndex int, correctLabel string) error {
	f.record("incorrect")
	return nil
}

func (f *fakeScreen) Clear() error {
	f.record("clear")
	return nil
}

func (f *fakeScreen) Width() int { return 120 }

func (f *fakeScreen) revealCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.revealed)
}

func (f *fakeScreen) eventLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.events))
	copy(out, f.events)
	return out
}

// fakeInput serves scripted keys, optionally waiting for a signal first.
type fakeInput struct {
	mu   sync.Mutex
	keys []Key
	wait chan struct{}
	err  error
}

func (f *fakeInput) ReadKey() (Key, error) {
	if f.wait != nil {
		<-f.wait
	}
	if f.err != nil {
		return 0, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.keys) == 0 {
		return KeyQuit, nil
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k, nil
}

// fakeFetcher serves a queue of snippets, then an error.
type fakeFetcher struct {
	mu    sync.Mutex
	queue []snippet.Snippet
	err   error
	calls int
}

func (f *fakeFetcher) Next(ctx context.Context) (snippet.Snippet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if len(f.queue) == 0 {
		if f.err != nil {
			return snippet.Snippet{}, f.err
		}
		return snippet.Snippet{}, io.EOF
	}
	s := f.queue[0]
	f.queue = f.queue[1:]
	return s, nil
}

// fakeStore is an in-memory score store.
type fakeStore struct {
	mu    sync.Mutex
	score int
	sets  int
}

func (f *fakeStore) HighScore(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.score, nil
}

func (f *fakeStore) SetHighScore(ctx context.Context, score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.score = score
	f.sets++
	return nil
}

func newTestSession(scr Screen, in Input, fetch Fetcher, store ScoreStore) *Session {
	cfg := config.Default()
	s := NewSession(&cfg, fetch, scr, in, store, log.New(io.Discard))
	s.revealCfg = revealConfig{
		initialDelay: time.Millisecond,
		lineDelay:    time.Millisecond,
	}
	s.resultDelay = time.Millisecond
	return s
}

func testLines(plains ...string) []snippet.Line {
	lines := make([]snippet.Line, len(plains))
	for i, p := range plains {
		lines[i] = snippet.Line{Index: i, Plain: p, Rendered: p, Blank: p == ""}
	}
	return lines
}
