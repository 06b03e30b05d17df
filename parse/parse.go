// Package parse turns raw document text into tagged sentence records.
package parse

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/grafrank/grafrank/lexicon"
	"github.com/grafrank/grafrank/para"
	"github.com/grafrank/grafrank/sentence"
	"github.com/grafrank/grafrank/tag"
)

// Document is one raw input record.
type Document struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// InputError reports a malformed document record. It is scoped to the
// failing document: registry state committed for prior documents stays
// valid.
type InputError struct {
	DocID  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid document %q: %s", e.DocID, e.Reason)
}

var (
	notWord    = regexp.MustCompile(`^\W+$`)
	underscore = regexp.MustCompile(`^_+$`)
)

// Parser marks up sentences with lemma roots, coarse POS classes and
// registry identities.
type Parser struct {
	Tagger   tag.Tagger
	Registry *lexicon.Registry
}

func NewParser(t tag.Tagger, reg *lexicon.Registry) *Parser {
	return &Parser{Tagger: t, Registry: reg}
}

// Doc parses a whole document: quote filtering, paragraph segmentation,
// then sentence markup with one running position index across the
// document.
func (p *Parser) Doc(doc Document, isEmail bool) ([]sentence.Sentence, error) {
	if doc.ID == "" {
		return nil, &InputError{DocID: doc.ID, Reason: "missing id"}
	}
	if strings.TrimSpace(doc.Text) == "" {
		return nil, &InputError{DocID: doc.ID, Reason: "missing text"}
	}

	var sents []sentence.Sentence
	baseIdx := 0

	for _, graf := range para.FilterQuotes(doc.Text, isEmail) {
		var parsed []sentence.Sentence
		parsed, baseIdx = p.Graf(doc.ID, graf, baseIdx)
		sents = append(sents, parsed...)
	}

	return sents, nil
}

// Graf parses one paragraph into sentence records, numbering token
// positions from baseIdx. It returns the records and the next free
// position index.
func (p *Parser) Graf(docID, graf string, baseIdx int) ([]sentence.Sentence, int) {
	var sents []sentence.Sentence

	for _, sentText := range p.Tagger.Sentences(graf) {
		units, words := p.Tagger.Tag(sentText)
		if len(units) == 0 {
			// collaborator produced nothing for this sentence, skip it
			continue
		}

		digest := sha1.New()
		toks := make([]sentence.Token, 0, len(units))
		wordIdx := 0

		for _, u := range units {
			tok := sentence.Token{Raw: u.Surface, Root: u.Surface, Pos: sentence.Other, Idx: baseIdx}

			if isNotWord(u.Surface) || u.Tag == "SYM" {
				tok.Pos = sentence.Punct
				// root stays the raw surface
			} else {
				// take the surface from the word-only list; the second
				// cursor guards against tagger/tokenizer drift
				if wordIdx < len(words) {
					tok.Raw = words[wordIdx]
					wordIdx++
				}

				tok.Pos = classOf(u.Tag)
				switch tok.Pos {
				case sentence.Noun, sentence.Verb:
					tok.Root = strings.ToLower(p.Tagger.Lemma(tok.Raw, tok.Pos))
				default:
					tok.Root = strings.ToLower(tok.Raw)
				}
			}

			switch tok.Pos {
			case sentence.Noun, sentence.Verb, sentence.Adj:
				tok.WordID = p.Registry.ID(tok.Root)
				tok.Keep = true
			}

			digest.Write([]byte(tok.Root))
			toks = append(toks, tok)
			baseIdx++
		}

		sents = append(sents, sentence.Sentence{
			DocID:  docID,
			Digest: hex.EncodeToString(digest.Sum(nil)),
			Tokens: toks,
		})
	}

	return sents, baseIdx
}

func isNotWord(surface string) bool {
	return notWord.MatchString(surface) || underscore.MatchString(surface)
}

// classOf coarsens a Penn-style tag to its family: the lowercased first
// letter, folded into noun/verb/adjective/other.
func classOf(t string) sentence.Class {
	if t == "" {
		return sentence.Other
	}

	switch strings.ToLower(t)[0] {
	case 'n':
		return sentence.Noun
	case 'v':
		return sentence.Verb
	case 'j':
		return sentence.Adj
	}
	return sentence.Other
}
