// Package explore is an interactive prompt over ranked phrases. A
// selected phrase shows its rank and ids plus the stored sentences
// containing all of its words.
package explore

import (
	"fmt"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/grafrank/grafrank/phrase"
	"github.com/grafrank/grafrank/render"
	sent "github.com/grafrank/grafrank/sentence"
	"github.com/grafrank/grafrank/storage"
)

const (
	completionThreshold = 2

	// candidateLimit bounds one fetch batch from the sentence index.
	candidateLimit = 500
)

type Handler struct {
	Lexemes  []phrase.Lexeme
	Sents    storage.SentenceReader
	Renderer *render.Text
}

func NewHandler(lexemes []phrase.Lexeme, sents storage.SentenceReader, r *render.Text) *Handler {
	return &Handler{
		Lexemes:  lexemes,
		Sents:    sents,
		Renderer: r,
	}
}

func (h *Handler) Run() error {
	fmt.Println("🔑 type a phrase, Tab completes, quit 🔧")

	history := []string{}

	for {
		in := prompt.Input("      🏷  ", h.completer(),
			prompt.OptionTitle("grafrank explore"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		if in == "quit" {
			return nil
		}

		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}
		history = append(history, in)

		rl, ok := h.lookup(in)
		if !ok {
			fmt.Printf("no such phrase: %s\n", in)
			continue
		}

		h.Renderer.Lexemes([]phrase.Lexeme{rl})
		if err := h.showSentences(rl); err != nil {
			fmt.Printf("Error fetching sentences: %v\n", err)
		}
	}
}

func (h *Handler) lookup(text string) (phrase.Lexeme, bool) {
	for _, rl := range h.Lexemes {
		if rl.Text == text {
			return rl, true
		}
	}
	return phrase.Lexeme{}, false
}

func (h *Handler) showSentences(rl phrase.Lexeme) error {
	roots := strings.Fields(rl.Text)

	cursor := storage.Cursor(0)
	for {
		newCursor, err := h.Sents.FindByRoots(roots, cursor, candidateLimit, func(sn sent.Sentence) error {
			fmt.Printf("✍  %s %s\n", sn.DocID, sn.Text())
			return nil
		})
		if err != nil {
			return err
		}
		if newCursor == cursor {
			return nil
		}
		cursor = newCursor
	}
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		if len(befCursor) < completionThreshold {
			return s
		}

		for _, rl := range h.Lexemes {
			if strings.HasPrefix(rl.Text, befCursor) {
				desc := fmt.Sprintf("%0.4f", rl.Rank)
				s = append(s, prompt.Suggest{Text: rl.Text, Description: desc})
			}
		}

		return s
	}
}
