package term

import (
	"fmt"
	"strings"

	"guessthelang/internal/game"
	"guessthelang/internal/snippet"
)

// Prompt shown above the option list.
const prompt = "Which programming language is this? (Type the corresponding number)"

// Fixed rows of the round frame (1-based terminal rows). Code lines start
// right under the five-row header; option rows depend on the code height.
const (
	headerRows = 5
	pointsRow  = 4
	// pointsCol is where the available-points value starts: the 9-column
	// gutter plus len("Available Points: ").
	pointsCol = snippet.Gutter + 19
)

func codeRow(index int) int {
	return headerRows + 1 + index
}

func optionRow(codeLines, optionIndex int) int {
	// bottom border, blank, prompt, blank, then the options.
	return headerRows + codeLines + 5 + optionIndex
}

// renderFrame builds the whole round frame: bordered header with the three
// score lines, the dotted code preview with its numbered gutter, and the
// option list. Lines are joined with \r\n for raw mode.
func renderFrame(v game.RoundView, width int) string {
	pipe := dimStyle.Render("│")
	gutterPad := strings.Repeat(" ", snippet.Gutter-2)

	var rows []string
	rows = append(rows, border("┬", width))
	rows = append(rows,
		fmt.Sprintf("%s%s %s%s", gutterPad, pipe,
			labelStyle.Render("High Score: "),
			highScoreStyle.Render(fmt.Sprint(v.HighScore))),
		fmt.Sprintf("%s%s %s%s", gutterPad, pipe,
			labelStyle.Render("Total Points: "),
			totalPointsStyle.Render(fmt.Sprint(v.TotalPoints))),
		fmt.Sprintf("%s%s %s%s", gutterPad, pipe,
			labelStyle.Render("Available Points: "),
			availablePointsStyle.Render("100")),
	)
	rows = append(rows, border("┼", width))

	for _, ln := range v.Lines {
		rows = append(rows, fmt.Sprintf("%s%s %s",
			centered(ln.Index+1, snippet.Gutter-2), pipe, dotted(ln.Plain)))
	}

	rows = append(rows, border("┴", width), "", prompt, "")
	for i, option := range v.Options {
		rows = append(rows, formatOption(fmt.Sprint(i+1), option))
	}
	rows = append(rows, formatOption("q", "Quit"))

	return strings.Join(rows, "\r\n")
}

// border renders a dim horizontal rule with the gutter junction char.
func border(junction string, width int) string {
	tail := width - snippet.Gutter + 1
	if tail < 0 {
		tail = 0
	}
	return dimStyle.Render(strings.Repeat("─", snippet.Gutter-2) + junction + strings.Repeat("─", tail))
}

// dotted replaces every non-whitespace character with a dot, keeping the
// indentation so the code's shape stays readable.
func dotted(line string) string {
	var b strings.Builder
	for _, r := range strings.TrimRight(line, " \t") {
		if r == ' ' || r == '\t' {
			b.WriteRune(r)
		} else {
			b.WriteRune('·')
		}
	}
	return b.String()
}

// centered centers n in a w-wide cell.
func centered(n, w int) string {
	s := fmt.Sprint(n)
	if len(s) >= w {
		return s
	}
	left := (w - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-len(s)-left)
}

// formatOption renders one option row, e.g. "     [2] Rust".
func formatOption(key, name string) string {
	return fmt.Sprintf("     [%s] %s", keyStyle.Render(key), name)
}
