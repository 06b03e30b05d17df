// Package phrase merges contiguous ranked tokens into key phrases,
// scores them against the rank map and normalizes the result into a
// probability-like distribution.
package phrase

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/grafrank/grafrank/chunk"
	"github.com/grafrank/grafrank/sentence"
)

// ErrEmptyCorpus signals that no rankable lexeme was found, so the
// normalizing division is undefined. Fatal, unlike the per-sentence
// degradations.
var ErrEmptyCorpus = errors.New("phrase: no rankable lexemes in corpus")

// Lexeme is a ranked keyword or noun phrase.
type Lexeme struct {
	Text string  `json:"text"`
	Rank float64 `json:"rank"`

	// IDs holds the contributing word identities: the union over the
	// member tokens. Never empty.
	IDs []int `json:"ids"`

	// Pos is "np" for multi-token phrases, else the coarse class of the
	// single member.
	Pos string `json:"pos"`
}

// PosPhrase marks multi-token noun phrases.
const PosPhrase = "np"

// Normalizer collects and normalizes the ranked lexemes of a parsed
// corpus. It requires the complete rank map: phrase collection must not
// start before rank propagation has finished.
type Normalizer struct {
	Chunker chunk.Chunker
	Ranks   map[string]float64

	// DropUnaligned controls the policy for chunker phrases that cannot
	// be aligned to a contiguous token sub-sequence: drop them silently
	// (default) or fall back to emitting the whole run.
	DropUnaligned bool
}

func NewNormalizer(c chunk.Chunker, ranks map[string]float64) *Normalizer {
	return &Normalizer{Chunker: c, Ranks: ranks, DropUnaligned: true}
}

// member is one token of a candidate phrase run.
type member struct {
	text string // lowercased surface
	rank float64
	id   int
	pos  sentence.Class
}

// Normalize runs the single-word and phrase passes over the corpus,
// deduplicates by identity set, and divides every rank by the total.
// The result is ordered by descending rank, ties by text.
func (n *Normalizer) Normalize(sents []sentence.Sentence) ([]Lexeme, error) {
	lex := map[string]Lexeme{}

	// single-word pass: ranked nouns and verbs, tracking the global
	// maximum single rank as the phrase bias term
	maxSingle := 0.0

	for _, s := range sents {
		for _, w := range s.Tokens {
			rank, ranked := n.Ranks[w.Root]
			if w.WordID == 0 || !ranked {
				continue
			}
			if w.Pos != sentence.Noun && w.Pos != sentence.Verb {
				continue
			}

			rl := Lexeme{
				Text: strings.ToLower(w.Raw),
				Rank: rank,
				IDs:  []int{w.WordID},
				Pos:  string(w.Pos),
			}
			lex[idsKey(rl.IDs)] = rl

			if rank > maxSingle {
				maxSingle = rank
			}
		}
	}

	// phrase pass: runs of kept, ranked, position-contiguous tokens
	for _, s := range sents {
		if len(s.Tokens) == 0 {
			continue
		}

		lastIdx := s.Tokens[0].Idx - 1
		var run []member

		for _, w := range s.Tokens {
			rank, ranked := n.Ranks[w.Root]

			if w.WordID > 0 && ranked && w.Idx-lastIdx == 1 {
				run = append(run, member{
					text: strings.ToLower(w.Raw),
					rank: rank,
					id:   w.WordID,
					pos:  w.Pos,
				})
			} else {
				// phrase boundary
				n.collect(run, maxSingle, lex)
				run = nil
			}

			lastIdx = w.Idx
		}

		// the end of the sentence is a boundary too
		n.collect(run, maxSingle, lex)
	}

	sum := 0.0
	for _, rl := range lex {
		sum += rl.Rank
	}
	if len(lex) == 0 || sum == 0 {
		return nil, ErrEmptyCorpus
	}

	out := make([]Lexeme, 0, len(lex))
	for _, rl := range lex {
		rl.Rank /= sum
		out = append(out, rl)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank > out[j].Rank
		}
		return out[i].Text < out[j].Text
	})

	return out, nil
}

// collect submits one run to the chunker and stores the resulting
// phrases. Runs of fewer than two tokens are covered by the single-word
// pass and skipped here.
func (n *Normalizer) collect(run []member, maxSingle float64, lex map[string]Lexeme) {
	if len(run) < 2 {
		return
	}

	texts := make([]string, len(run))
	for i, m := range run {
		texts[i] = m.text
	}
	text := strings.Join(texts, " ")

	found := false
	for _, np := range n.Chunker.NounPhrases(text) {
		if np == text {
			continue
		}
		found = true

		sub := alignChunk(run, np)
		if sub == nil {
			if n.DropUnaligned {
				// lossy: the chunker phrase has no contiguous token
				// alignment, drop it
				continue
			}
			sub = run
		}

		store(lex, np, sub, maxSingle)
	}

	if !found && !hasVerb(run) {
		store(lex, text, run, maxSingle)
	}
}

// store scores a phrase and records it under its identity-set key. A
// later occurrence overwrites an earlier one: both denote the same
// concept.
func store(lex map[string]Lexeme, text string, members []member, maxSingle float64) {
	ids := make(map[int]struct{}, len(members))
	sumSq := 0.0
	for _, m := range members {
		ids[m.id] = struct{}{}
		sumSq += m.rank * m.rank
	}

	uniq := make([]int, 0, len(ids))
	for id := range ids {
		uniq = append(uniq, id)
	}
	sort.Ints(uniq)

	rank := math.Sqrt(sumSq)/float64(len(members)) + maxSingle

	lex[idsKey(uniq)] = Lexeme{Text: text, Rank: rank, IDs: uniq, Pos: PosPhrase}
}

// alignChunk finds the first contiguous sub-sequence of run whose
// surfaces match the chunker phrase exactly. Nil when no alignment
// exists.
func alignChunk(run []member, np string) []member {
	words := strings.Split(np, " ")
	if len(words) == 0 || len(words) > len(run) {
		return nil
	}

	for i := 0; i+len(words) <= len(run); i++ {
		match := true
		for j, w := range words {
			if run[i+j].text != w {
				match = false
				break
			}
		}
		if match {
			return run[i : i+len(words)]
		}
	}

	return nil
}

func hasVerb(run []member) bool {
	for _, m := range run {
		if m.pos == sentence.Verb {
			return true
		}
	}
	return false
}

func idsKey(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
