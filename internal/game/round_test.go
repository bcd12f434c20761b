package game

import (
	"strings"
	"testing"
	"time"
)

func fixedRound() Round {
	return Round{
		Lines:   testLines("fn main() {", "}"),
		Options: []string{"Go", "Rust", "C", "Java"},
		Answer:  "Rust",
	}
}

// noReveal keeps the reveal worker asleep so the pool stays untouched.
func noReveal() revealConfig {
	return revealConfig{initialDelay: time.Hour, lineDelay: time.Hour}
}

func TestPlayRoundCorrectAnswer(t *testing.T) {
	scr := &fakeScreen{}
	in := &fakeInput{keys: []Key{KeyDigit2}}
	s := newTestSession(scr, in, &fakeFetcher{}, &fakeStore{})
	s.revealCfg = noReveal()

	outcome, err := s.playRound(fixedRound(), nil)
	if err != nil {
		t.Fatalf("playRound: %v", err)
	}
	if outcome != OutcomeContinue {
		t.Errorf("expected continue, got %v", outcome)
	}
	if s.Points() != 100 {
		t.Errorf("expected full pool awarded, got %d", s.Points())
	}
	log := scr.eventLog()
	if log[len(log)-1] != "correct" {
		t.Errorf("expected correct mark last, got %v", log)
	}
}

func TestPlayRoundIncorrectAnswer(t *testing.T) {
	scr := &fakeScreen{}
	in := &fakeInput{keys: []Key{KeyDigit1}}
	s := newTestSession(scr, in, &fakeFetcher{}, &fakeStore{})
	s.revealCfg = noReveal()

	outcome, err := s.playRound(fixedRound(), nil)
	if err != nil {
		t.Fatalf("playRound: %v", err)
	}
	if outcome != OutcomeBreak {
		t.Errorf("expected break, got %v", outcome)
	}
	if s.Points() != 0 {
		t.Errorf("no points should be awarded, got %d", s.Points())
	}
	log := scr.eventLog()
	if log[len(log)-1] != "incorrect" {
		t.Errorf("expected incorrect mark last, got %v", log)
	}
}

func TestPlayRoundQuit(t *testing.T) {
	scr := &fakeScreen{}
	in := &fakeInput{keys: []Key{KeyQuit}}
	s := newTestSession(scr, in, &fakeFetcher{}, &fakeStore{})
	s.revealCfg = noReveal()

	outcome, err := s.playRound(fixedRound(), nil)
	if err != nil {
		t.Fatalf("playRound: %v", err)
	}
	if outcome != OutcomeBreak {
		t.Errorf("expected break, got %v", outcome)
	}
	for _, ev := range scr.eventLog() {
		if ev == "correct" || ev == "incorrect" {
			t.Errorf("no outcome should be marked on quit, got %v", scr.eventLog())
		}
	}
}

func TestPlayRoundSkip(t *testing.T) {
	scr := &fakeScreen{}
	in := &fakeInput{keys: []Key{KeySkip}}
	s := newTestSession(scr, in, &fakeFetcher{}, &fakeStore{})
	s.revealCfg = noReveal()

	outcome, err := s.playRound(fixedRound(), nil)
	if err != nil {
		t.Fatalf("playRound: %v", err)
	}
	if outcome != OutcomeBreak {
		t.Errorf("expected break, got %v", outcome)
	}
	if s.Points() != 0 {
		t.Errorf("skip must not score, got %d", s.Points())
	}
}

func TestPlayRoundMissingAnswerErrors(t *testing.T) {
	scr := &fakeScreen{}
	in := &fakeInput{keys: []Key{KeyDigit1}}
	s := newTestSession(scr, in, &fakeFetcher{}, &fakeStore{})
	s.revealCfg = noReveal()

	r := fixedRound()
	r.Options = []string{"Go", "C", "Java", "Python"}

	_, err := s.playRound(r, nil)
	if err == nil {
		t.Fatal("expected an error for an option set without the answer")
	}
	if !strings.Contains(err.Error(), "missing from its option set") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPlayRoundAwardReflectsReveals(t *testing.T) {
	scr := &fakeScreen{}
	wait := make(chan struct{})
	in := &fakeInput{keys: []Key{KeyDigit2}, wait: wait}
	s := newTestSession(scr, in, &fakeFetcher{}, &fakeStore{})

	// Hold the answer back until the second line is on screen, then the
	// long line delay keeps a third reveal from racing the cancellation.
	s.revealCfg = revealConfig{initialDelay: time.Millisecond, lineDelay: 100 * time.Millisecond}
	scr.onReveal = func(count int) {
		if count == 2 {
			close(wait)
		}
	}

	r := Round{
		Lines:   testLines("a", "b", "c", "d"),
		Options: []string{"Go", "Rust", "C", "Java"},
		Answer:  "Rust",
	}
	outcome, err := s.playRound(r, nil)
	if err != nil {
		t.Fatalf("playRound: %v", err)
	}
	if outcome != OutcomeContinue {
		t.Fatalf("expected continue, got %v", outcome)
	}
	if s.Points() != 90 {
		t.Errorf("two reveals should leave 90 points, got %d", s.Points())
	}
}

func TestPlayRoundWaitsForReady(t *testing.T) {
	scr := &fakeScreen{}
	in := &fakeInput{keys: []Key{KeyQuit}}
	s := newTestSession(scr, in, &fakeFetcher{}, &fakeStore{})
	s.revealCfg = noReveal()

	ready := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := s.playRound(fixedRound(), ready); err != nil {
			t.Errorf("playRound: %v", err)
		}
	}()

	time.Sleep(20 * time.Millisecond)
	if n := len(scr.eventLog()); n != 0 {
		t.Fatalf("frame drawn before the ready signal: %v", scr.eventLog())
	}
	close(ready)
	<-done

	if log := scr.eventLog(); len(log) == 0 || log[0] != "show" {
		t.Errorf("expected the frame after ready, got %v", log)
	}
}
