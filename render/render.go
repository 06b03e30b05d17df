// Package render prints pipeline records for the terminal and as
// line-oriented JSON for piping between stages.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/grafrank/grafrank/phrase"
	"github.com/grafrank/grafrank/summary"
)

var (
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	Off       = "\033[0m"
)

// Text renders pipeline output for the terminal.
type Text struct {
	W io.Writer

	HasColor  bool
	HasPrefix bool
}

func NewText(w io.Writer) *Text {
	return &Text{W: w, HasPrefix: true}
}

// Phrases prints the selected key phrases, one per line.
func (r *Text) Phrases(phrases []string) {
	for i, p := range phrases {
		prefix := ""
		if r.HasPrefix {
			prefix = fmt.Sprintf("🏷  %2d ", i+1)
		}
		fmt.Fprintf(r.W, "%s%s\n", prefix, r.color(Yellow256, p))
	}
}

// Lexemes prints ranked lexemes in aligned columns: rank, class marker,
// contributing ids, text.
func (r *Text) Lexemes(lexemes []phrase.Lexeme) {
	for _, rl := range lexemes {
		ids := make([]string, len(rl.IDs))
		for i, id := range rl.IDs {
			ids[i] = fmt.Sprintf("%d", id)
		}
		fmt.Fprintf(r.W, "%0.6f %4s %-20s %s\n", rl.Rank, rl.Pos, "["+strings.Join(ids, ",")+"]", rl.Text)
	}
}

// Ranked prints scored sentences in distance order.
func (r *Text) Ranked(sents []summary.Sentence) {
	for _, s := range sents {
		prefix := ""
		if r.HasPrefix {
			prefix = fmt.Sprintf("[%0.4f %4d] ✍  ", s.Dist, s.Idx)
		}
		fmt.Fprintf(r.W, "%s%s\n", prefix, strings.ReplaceAll(s.Text, "\n", " "))
	}
}

// Summary prints the assembled summary text.
func (r *Text) Summary(text string) {
	fmt.Fprintf(r.W, "%s\n", r.color(Grey256, text))
}

func (r *Text) color(code, s string) string {
	if !r.HasColor {
		return s
	}
	return code + s + Off
}
