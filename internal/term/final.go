package term

import (
	"fmt"
	"io"
)

// PrintFinalScore reports the session result on the primary screen. It
// must run after the terminal is restored.
func PrintFinalScore(w io.Writer, points, highScore int) {
	fmt.Fprintf(w, "\nYou scored %s points!\n", finalScoreStyle.Render(fmt.Sprint(points)))
	if points > highScore && highScore > 0 {
		fmt.Fprintf(w, "You beat your high score of %s!\n", finalRecordStyle.Render(fmt.Sprint(highScore)))
	}
}
