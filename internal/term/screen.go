// Package term owns the terminal: raw mode lifecycle, the alternate
// screen, and the absolute-positioned writes the reveal loop depends on.
package term

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	xterm "golang.org/x/term"

	"guessthelang/internal/game"
	"guessthelang/internal/snippet"
)

// Screen renders the game onto a real terminal. All writes go through one
// mutex so bursts from the reveal worker and the coordinator never
// interleave.
type Screen struct {
	mu  sync.Mutex
	out *termenv.Output

	inFd  int
	prev  *xterm.State
	width int

	// codeLines is the height of the current round's code block; option
	// row positions depend on it.
	codeLines int

	restore sync.Once
}

var _ game.Screen = (*Screen)(nil)

// Open switches the terminal to raw mode on the alternate screen. Close
// must run on every exit path.
func Open() (*Screen, error) {
	outFd := int(os.Stdout.Fd())
	if !xterm.IsTerminal(outFd) {
		return nil, errors.New("stdout is not a terminal")
	}
	width, _, err := xterm.GetSize(outFd)
	if err != nil {
		return nil, fmt.Errorf("querying terminal size: %w", err)
	}

	inFd := int(os.Stdin.Fd())
	prev, err := xterm.MakeRaw(inFd)
	if err != nil {
		return nil, fmt.Errorf("enabling raw mode: %w", err)
	}

	out := termenv.NewOutput(os.Stdout)
	out.AltScreen()
	out.HideCursor()
	out.MoveCursor(1, 1)

	return &Screen{out: out, inFd: inFd, prev: prev, width: width}, nil
}

// Close restores the terminal to its original state. Idempotent, so it
// can be deferred and called explicitly.
func (s *Screen) Close() error {
	var err error
	s.restore.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.out.ExitAltScreen()
		s.out.ShowCursor()
		err = xterm.Restore(s.inFd, s.prev)
	})
	return err
}

// Width is the terminal width measured at startup.
func (s *Screen) Width() int { return s.width }

// ShowRound draws the full round frame.
func (s *Screen) ShowRound(v game.RoundView) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codeLines = len(v.Lines)
	s.out.MoveCursor(1, 1)
	_, err := s.out.WriteString(renderFrame(v, s.width))
	return err
}

// RevealLine replaces one dotted preview row with its highlighted text.
func (s *Screen) RevealLine(index int, rendered string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.SaveCursorPosition()
	s.out.MoveCursor(codeRow(index), snippet.Gutter+1)
	_, err := s.out.WriteString(rendered)
	s.out.RestoreCursorPosition()
	return err
}

// UpdatePoints repaints the available-points value with a color sliding
// from green (100) to red (0).
func (s *Screen) UpdatePoints(remaining float64) error {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(rampColor(remaining)))
	value := strconv.FormatFloat(remaining, 'f', -1, 64)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.SaveCursorPosition()
	s.out.MoveCursor(pointsRow, pointsCol)
	_, err := s.out.WriteString(style.Render(value) + " ")
	s.out.RestoreCursorPosition()
	return err
}

// MarkCorrect repaints the matched option with the points awarded.
func (s *Screen) MarkCorrect(optionIndex int, label string, awarded int) error {
	text := formatOption(strconv.Itoa(optionIndex+1),
		correctStyle.Render(fmt.Sprintf("%s (+ %d)", label, awarded)))
	return s.paintOption(optionIndex, text)
}

// MarkIncorrect repaints the chosen option as wrong and the true answer
// as correct.
func (s *Screen) MarkIncorrect(chosenIndex int, chosenLabel string, correctIndex int, correctLabel string) error {
	wrong := formatOption(strconv.Itoa(chosenIndex+1),
		incorrectStyle.Render(chosenLabel+" (Incorrect)"))
	if err := s.paintOption(chosenIndex, wrong); err != nil {
		return err
	}
	right := formatOption(strconv.Itoa(correctIndex+1),
		correctStyle.Render(correctLabel+" (Correct)"))
	return s.paintOption(correctIndex, right)
}

func (s *Screen) paintOption(optionIndex int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.SaveCursorPosition()
	s.out.MoveCursor(optionRow(s.codeLines, optionIndex), 1)
	s.out.ClearLine()
	_, err := s.out.WriteString(text)
	s.out.RestoreCursorPosition()
	return err
}

// Clear wipes the screen between rounds.
func (s *Screen) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.ClearScreen()
	s.out.MoveCursor(1, 1)
	return nil
}

// rampColor interpolates the points color from green through yellow to
// red as the pool drains.
func rampColor(remaining float64) string {
	fraction := remaining / 100.0
	r := min(255.0, 510.0*(1.0-fraction))
	g := min(255.0, 510.0*fraction)
	if r < 0 {
		r = 0
	}
	if g < 0 {
		g = 0
	}
	return colorful.Color{R: r / 255.0, G: g / 255.0, B: 0}.Hex()
}
