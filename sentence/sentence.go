package sentence

import "strings"

// Class is the coarse part-of-speech family of a token.
type Class string

const (
	Noun  Class = "n"
	Verb  Class = "v"
	Adj   Class = "j"
	Other Class = "x"
	Punct Class = "."
)

// Token represents a word of a sentence, with POS and metadata.
type Token struct {
	// WordID is the registry identity of the token root. 0 means the
	// token takes no part in ranking.
	WordID int `json:"word_id"`

	// The unmodified word
	Raw string `json:"raw"`

	// The canonical lemma root of the word
	Root string `json:"root"`

	Pos Class `json:"pos"`

	// Keep marks tokens eligible for the co-occurrence graph.
	Keep bool `json:"keep"`

	// Idx is the position of the token across the whole document,
	// starting at 0.
	Idx int `json:"idx"`
}

// Sentence is one parsed sentence of a document.
type Sentence struct {
	DocID string `json:"id"`

	// Digest is a hex SHA-1 over the token roots in order. It identifies
	// the sentence independently of surface casing.
	Digest string `json:"digest"`

	Tokens []Token `json:"tokens"`
}

// Text joins the raw token surfaces with single spaces.
func (s Sentence) Text() string {
	raws := make([]string, len(s.Tokens))
	for i, t := range s.Tokens {
		raws[i] = t.Raw
	}
	return strings.Join(raws, " ")
}

// Kept returns the tokens holding a registry identity, in position order.
func (s Sentence) Kept() []Token {
	var kept []Token
	for _, t := range s.Tokens {
		if t.WordID > 0 {
			kept = append(kept, t)
		}
	}
	return kept
}
