// Package storage defines the repository interfaces for corpora,
// parsed sentences and ranked phrases.
package storage

import (
	"github.com/grafrank/grafrank/parse"
	"github.com/grafrank/grafrank/phrase"
	sent "github.com/grafrank/grafrank/sentence"
)

// CorpusReader loads raw documents for a pipeline run.
type CorpusReader interface {
	// Documents returns all documents of the corpus.
	Documents() ([]parse.Document, error)
}

// Cursor for paginated root-based queries.
type Cursor int64

// SentenceReader defines read operations for parsed sentence storage.
type SentenceReader interface {
	// List returns the ids of all stored documents, sorted.
	List() ([]string, error)

	// Read returns the parsed sentences of a document.
	Read(docID string) ([]sent.Sentence, error)

	// FindByRoots calls onMatch for stored sentences containing ALL
	// given roots, resuming after the cursor. Returns the new cursor.
	FindByRoots(roots []string, after Cursor, limit int, onMatch func(sent.Sentence) error) (Cursor, error)
}

// SentenceWriter defines write operations for parsed sentence storage.
type SentenceWriter interface {
	// Write persists the parsed sentences of a document.
	Write(docID string, sents []sent.Sentence) error
}

// SentenceRepository combines read and write operations.
type SentenceRepository interface {
	SentenceReader
	SentenceWriter
}

// PhraseReader defines read operations for ranked phrase storage.
type PhraseReader interface {
	// Runs returns the names of all stored ranking runs, sorted.
	Runs() ([]string, error)

	// Phrases returns the ranked lexemes of a run, in rank order.
	Phrases(run string) ([]phrase.Lexeme, error)
}

// PhraseWriter defines write operations for ranked phrase storage.
type PhraseWriter interface {
	// WritePhrases persists the ranked lexemes of a run, replacing any
	// previous run with the same name.
	WritePhrases(run string, lexemes []phrase.Lexeme) error
}

// PhraseRepository combines read and write operations.
type PhraseRepository interface {
	PhraseReader
	PhraseWriter
}
