// Package snippet turns raw fetched source text into the bounded,
// highlighted, line-indexed form a round displays.
package snippet

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
)

// Gutter is the number of columns reserved on the left of each code line
// for the line number and separator.
const Gutter = 9

// Snippet is one fetched source text with its ground-truth language.
type Snippet struct {
	Raw      string
	Language string
}

// Line is one display line of a processed snippet. Plain is the
// width-capped text used for the dotted preview; Rendered is the same
// content with highlight styling, shown only after reveal.
type Line struct {
	Index    int
	Plain    string
	Rendered string
	Blank    bool
}

// Processor applies the fixed preprocessing pipeline with one highlight
// style. It is pure: the same inputs always yield the same lines.
type Processor struct {
	style string
}

// NewProcessor returns a processor rendering with the named chroma style.
func NewProcessor(style string) *Processor {
	return &Processor{style: style}
}

// maxLines is the cap on non-blank lines shown per round.
const maxLines = 10

// Process turns raw source into display lines:
//   - lines wider than width (including the gutter) are truncated with "..."
//   - comment lines are dropped, keyed by the style's comment foregrounds
//   - input stops after 10 non-blank lines
//   - blank runs collapse to a single blank, edges are trimmed
//
// It returns nil when nothing usable remains; the caller must request a
// different snippet.
func (p *Processor) Process(raw, language string, width int) []Line {
	physical := splitLines(raw)

	capped := make([]string, len(physical))
	for i, line := range physical {
		capped[i] = capWidth(line, width)
	}

	style := styleFor(p.style)
	comments := commentColours(style)

	var perLine [][]token
	lexer := lexerFor(language)
	if lexer == nil {
		perLine = plainTokens(capped)
	} else {
		perLine = tokensPerLine(lexer, style, capped)
	}

	var lines []Line
	taken := 0
	for i, plain := range capped {
		tokens := perLine[i]
		if isComment(tokens, comments) {
			continue
		}
		blank := strings.TrimSpace(plain) == ""
		if !blank {
			taken++
			if taken > maxLines {
				break
			}
		}
		ln := Line{Plain: plain, Blank: blank}
		if !blank {
			ln.Rendered = render(tokens)
		}
		lines = append(lines, ln)
	}

	lines = collapseBlanks(lines)
	lines = trimBlanks(lines)
	if len(lines) == 0 {
		return nil
	}

	for i := range lines {
		lines[i].Index = i
	}
	return lines
}

func splitLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	// A trailing newline yields a phantom empty final line; drop it so it
	// does not register as a blank.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// capWidth truncates a line so that it plus the gutter fits width exactly,
// spending three columns on the ellipsis.
func capWidth(line string, width int) string {
	if len(line)+Gutter <= width {
		return line
	}
	cut := width - Gutter - 3
	if cut < 0 {
		cut = 0
	}
	return line[:cut] + "..."
}

func isComment(tokens []token, comments map[chroma.Colour]struct{}) bool {
	for _, t := range tokens {
		if _, ok := comments[t.colour]; ok {
			return true
		}
	}
	return false
}

func collapseBlanks(lines []Line) []Line {
	out := lines[:0]
	for _, ln := range lines {
		if ln.Blank && len(out) > 0 && out[len(out)-1].Blank {
			continue
		}
		out = append(out, ln)
	}
	return out
}

func trimBlanks(lines []Line) []Line {
	start := 0
	for start < len(lines) && lines[start].Blank {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1].Blank {
		end--
	}
	return lines[start:end]
}
