// Package summary scores sentences against the ranked phrase kernel and
// assembles the final output under count and word budgets.
package summary

import (
	"sort"
	"strings"

	"github.com/grafrank/grafrank/minhash"
	"github.com/grafrank/grafrank/phrase"
	"github.com/grafrank/grafrank/sentence"
)

const (
	// DefaultPhraseLimit caps the key phrases selected for output.
	DefaultPhraseLimit = 20

	// DefaultWordLimit is the summary word budget.
	DefaultWordLimit = 100
)

// Entry pairs a ranked lexeme with the signature of its identity set.
type Entry struct {
	Lexeme phrase.Lexeme
	Sig    *minhash.Signature
}

// Kernel is the signature index over the ranked phrases. It must be
// complete before sentence scoring starts.
type Kernel []Entry

// BuildKernel sketches every lexeme's identity set.
func BuildKernel(lexemes []phrase.Lexeme, size int) Kernel {
	kernel := make(Kernel, 0, len(lexemes))
	for _, rl := range lexemes {
		kernel = append(kernel, Entry{Lexeme: rl, Sig: minhash.FromInts(rl.IDs, size)})
	}
	return kernel
}

// Sentence is a scored summary candidate.
type Sentence struct {
	// Dist is the similarity-weighted relevance of the sentence to the
	// phrase kernel.
	Dist float64 `json:"dist"`

	// Idx is the original ordinal position of the sentence.
	Idx int `json:"idx"`

	Text string `json:"text"`
}

// ScoreSentences computes the kernel distance of every sentence and
// orders the result by descending distance, ties by ascending original
// index. Sentences rendering to identical text collapse under one key,
// keeping the last index; a documented limitation.
func ScoreSentences(sents []sentence.Sentence, kernel Kernel, size int) []Sentence {
	byText := map[string]Sentence{}

	for i, s := range sents {
		ids := make([]int, len(s.Tokens))
		for j, tok := range s.Tokens {
			ids[j] = tok.WordID
		}

		sig := minhash.FromInts(ids, size)

		dist := 0.0
		for _, e := range kernel {
			dist += sig.Jaccard(e.Sig) * e.Lexeme.Rank
		}

		byText[s.Text()] = Sentence{Dist: dist, Idx: i, Text: s.Text()}
	}

	out := make([]Sentence, 0, len(byText))
	for _, s := range byText {
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Dist != out[j].Dist {
			return out[i].Dist > out[j].Dist
		}
		return out[i].Idx < out[j].Idx
	})

	return out
}

// LimitPhrases selects the top key phrases: lexemes are scanned in
// their descending-rank order, verb-led entries are skipped, and the
// scan stops outright once the count limit is reached or at the first
// entry below the mean rank. An early exit, not a filter; valid because
// the stream is already sorted.
func LimitPhrases(lexemes []phrase.Lexeme, limit int) []string {
	if len(lexemes) == 0 {
		return nil
	}

	mean := 0.0
	for _, rl := range lexemes {
		mean += rl.Rank
	}
	mean /= float64(len(lexemes))

	var out []string
	used := 0

	for _, rl := range lexemes {
		if strings.HasPrefix(rl.Pos, "v") {
			continue
		}
		if used >= limit || rl.Rank < mean {
			break
		}
		used++
		out = append(out, rl.Text)
	}

	return out
}

// LimitSentences returns the strict prefix of the distance-sorted
// sentences that fits the word budget. The first sentence that would
// exceed the budget stops the scan; later shorter sentences are not
// considered.
func LimitSentences(sents []Sentence, wordLimit int) []Sentence {
	var out []Sentence
	words := 0

	for _, s := range sents {
		n := len(strings.Split(s.Text, " "))
		if words+n > wordLimit {
			break
		}
		words += n
		out = append(out, s)
	}

	return out
}

// noSpaceBefore lists the leading characters that suppress the joining
// space during rendering.
const noSpaceBefore = `,.:;!?-"'`

// Render concatenates sentence words with single spaces, omitting the
// space before leading punctuation.
func Render(words []string) string {
	var b strings.Builder

	for i, w := range words {
		if i > 0 && (w == "" || !strings.ContainsRune(noSpaceBefore, firstRune(w))) {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}

	return b.String()
}

// Text renders the selected sentences in original document order, each
// rendered from its space-separated words.
func Text(selected []Sentence) string {
	ordered := make([]Sentence, len(selected))
	copy(ordered, selected)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Idx < ordered[j].Idx
	})

	parts := make([]string, len(ordered))
	for i, s := range ordered {
		parts[i] = Render(strings.Split(s.Text, " "))
	}

	return strings.Join(parts, " ")
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
