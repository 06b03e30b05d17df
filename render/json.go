package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/grafrank/grafrank/parse"
	"github.com/grafrank/grafrank/phrase"
	sent "github.com/grafrank/grafrank/sentence"
	"github.com/grafrank/grafrank/summary"
)

// maxLineBytes bounds one JSON record line.
const maxLineBytes = 4 << 20

// JSONLines writes one record per line, so stage output can be piped
// into the next stage or stored as-is.
type JSONLines struct {
	W io.Writer
}

// NewJSONLines creates a JSONLines renderer writing to w.
func NewJSONLines(w io.Writer) *JSONLines {
	return &JSONLines{W: w}
}

// Sentences writes parsed sentence records.
func (r *JSONLines) Sentences(sents []sent.Sentence) error {
	enc := json.NewEncoder(r.W)
	for _, s := range sents {
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding sentence record: %w", err)
		}
	}
	return nil
}

// Lexemes writes ranked lexeme records.
func (r *JSONLines) Lexemes(lexemes []phrase.Lexeme) error {
	enc := json.NewEncoder(r.W)
	for _, rl := range lexemes {
		if err := enc.Encode(rl); err != nil {
			return fmt.Errorf("encoding lexeme record: %w", err)
		}
	}
	return nil
}

// Summary writes ranked summary sentence records.
func (r *JSONLines) Summary(sents []summary.Sentence) error {
	enc := json.NewEncoder(r.W)
	for _, s := range sents {
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding summary record: %w", err)
		}
	}
	return nil
}

// ReadDocuments reads raw document records, one JSON object per line.
// Blank lines are skipped.
func ReadDocuments(r io.Reader) ([]parse.Document, error) {
	var docs []parse.Document
	err := eachLine(r, func(line []byte) error {
		var d parse.Document
		if err := json.Unmarshal(line, &d); err != nil {
			return fmt.Errorf("decoding document record: %w", err)
		}
		docs = append(docs, d)
		return nil
	})
	return docs, err
}

// ReadSentences reads parsed sentence records, one per line.
func ReadSentences(r io.Reader) ([]sent.Sentence, error) {
	var sents []sent.Sentence
	err := eachLine(r, func(line []byte) error {
		var s sent.Sentence
		if err := json.Unmarshal(line, &s); err != nil {
			return fmt.Errorf("decoding sentence record: %w", err)
		}
		sents = append(sents, s)
		return nil
	})
	return sents, err
}

// ReadLexemes reads ranked lexeme records, one per line.
func ReadLexemes(r io.Reader) ([]phrase.Lexeme, error) {
	var lexemes []phrase.Lexeme
	err := eachLine(r, func(line []byte) error {
		var rl phrase.Lexeme
		if err := json.Unmarshal(line, &rl); err != nil {
			return fmt.Errorf("decoding lexeme record: %w", err)
		}
		lexemes = append(lexemes, rl)
		return nil
	})
	return lexemes, err
}

func eachLine(r io.Reader, fn func(line []byte) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}

	return sc.Err()
}
