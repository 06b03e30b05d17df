// Package tag provides the linguistic collaborator consumed by the
// parser: sentence splitting, part-of-speech tagging and lemmatization.
//
// The parser only depends on the Tagger interface, so a heavier external
// tagger can be swapped in without touching the pipeline. The bundled
// English implementation is rule based and self contained.
package tag

import "github.com/grafrank/grafrank/sentence"

// Unit is one tagged surface form of a sentence.
type Unit struct {
	Surface string
	Tag     string
}

// Tagger is the tokenizer/tagger/lemmatizer service the parser calls.
type Tagger interface {
	// Sentences splits paragraph text into sentence strings.
	Sentences(text string) []string

	// Tag returns the tagged units of a sentence in order, plus the
	// independent word-only token list the parser uses to cross-index
	// surfaces against tagger/tokenizer segmentation drift.
	Tag(sent string) ([]Unit, []string)

	// Lemma returns the singularized, lemmatized base form of word for
	// the given coarse class.
	Lemma(word string, class sentence.Class) string
}
