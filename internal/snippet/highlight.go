package snippet

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// token is a syntax-highlighted chunk of one line.
type token struct {
	text   string
	colour chroma.Colour
}

// lexerFor resolves a lexer from a language name or a file extension,
// returning nil when neither is recognized (plain-text mode).
func lexerFor(language string) chroma.Lexer {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Match("file." + strings.TrimPrefix(language, "."))
	}
	if lexer != nil {
		lexer = chroma.Coalesce(lexer)
	}
	return lexer
}

// styleFor returns the named chroma style, falling back if unknown.
func styleFor(name string) *chroma.Style {
	style := styles.Get(name)
	if style == nil {
		style = styles.Fallback
	}
	return style
}

// commentColours resolves the foregrounds the style assigns to comments.
// Lines painted in one of these are treated as comments and suppressed,
// independent of the source language's comment syntax.
func commentColours(style *chroma.Style) map[chroma.Colour]struct{} {
	out := make(map[chroma.Colour]struct{}, 2)
	for _, tt := range []chroma.TokenType{chroma.Comment, chroma.CommentSpecial} {
		if c := style.Get(tt).Colour; c.IsSet() {
			out[c] = struct{}{}
		}
	}
	return out
}

// tokensPerLine tokenises the whole source once and splits the token
// stream back into per-line slices, so lexer state survives constructs
// that span lines (block comments, here-docs).
func tokensPerLine(lexer chroma.Lexer, style *chroma.Style, lines []string) [][]token {
	source := strings.Join(lines, "\n")
	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return plainTokens(lines)
	}

	result := make([][]token, 0, len(lines))
	var current []token

	for _, t := range iterator.Tokens() {
		parts := strings.Split(t.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				result = append(result, current)
				current = nil
			}
			if part != "" {
				current = append(current, token{
					text:   part,
					colour: style.Get(t.Type).Colour,
				})
			}
		}
	}
	result = append(result, current)

	for len(result) < len(lines) {
		result = append(result, nil)
	}
	return result[:len(lines)]
}

func plainTokens(lines []string) [][]token {
	result := make([][]token, len(lines))
	for i, line := range lines {
		if line != "" {
			result[i] = []token{{text: line}}
		}
	}
	return result
}

// render concatenates the styled text of one line's tokens.
func render(tokens []token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.colour.IsSet() {
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(t.colour.String())).
				Render(t.text))
		} else {
			b.WriteString(t.text)
		}
	}
	return b.String()
}
