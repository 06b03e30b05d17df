// Package chunk detects contiguous noun phrases within a sentence. The
// phrase normalizer consumes it through the Chunker interface, so a
// syntactic chunker backed by a full parser can replace the bundled
// rule-based one.
package chunk

import (
	"strings"

	"github.com/grafrank/grafrank/tag"
)

// Chunker returns the contiguous noun-phrase substrings detected in a
// sentence string. Phrases are lowercased, words joined by single spaces.
type Chunker interface {
	NounPhrases(text string) []string
}

// Rule is a tag-grammar chunker: a noun phrase is a run of two or more
// adjectives and nouns that ends in a noun.
type Rule struct {
	Tagger tag.Tagger
}

func NewRule(t tag.Tagger) *Rule {
	return &Rule{Tagger: t}
}

var _ Chunker = (*Rule)(nil)

func (c *Rule) NounPhrases(text string) []string {
	units, _ := c.Tagger.Tag(text)

	var phrases []string
	var run []tag.Unit

	flush := func() {
		// a phrase must end in a noun, trim trailing adjectives
		for len(run) > 0 && !nounTag(run[len(run)-1].Tag) {
			run = run[:len(run)-1]
		}

		if len(run) >= 2 {
			words := make([]string, len(run))
			for i, u := range run {
				words[i] = strings.ToLower(u.Surface)
			}
			phrases = append(phrases, strings.Join(words, " "))
		}

		run = nil
	}

	for _, u := range units {
		if nounTag(u.Tag) || adjTag(u.Tag) {
			run = append(run, u)
			continue
		}
		flush()
	}
	flush()

	return phrases
}

func nounTag(t string) bool {
	return strings.HasPrefix(t, "NN")
}

func adjTag(t string) bool {
	return strings.HasPrefix(t, "JJ")
}
