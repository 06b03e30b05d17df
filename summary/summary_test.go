package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafrank/grafrank/minhash"
	"github.com/grafrank/grafrank/phrase"
	"github.com/grafrank/grafrank/sentence"
)

func TestRenderPunctuationSpacing(t *testing.T) {
	got := Render([]string{"Hello", ",", "world", "!"})

	assert.Equal(t, "Hello, world!", got)
}

func TestRenderPlainWords(t *testing.T) {
	got := Render([]string{"ships", "sail", "away"})

	assert.Equal(t, "ships sail away", got)
}

func TestLimitSentencesBudget(t *testing.T) {
	sents := []Sentence{
		{Dist: 0.9, Idx: 0, Text: "one two three four"},   // 4 words
		{Dist: 0.8, Idx: 1, Text: "five six seven"},       // 3 words
		{Dist: 0.7, Idx: 2, Text: "eight nine ten eleven"}, // 4 words, over budget
	}

	out := LimitSentences(sents, 8)

	require.Len(t, out, 2)
	assert.Equal(t, 0, out[0].Idx)
	assert.Equal(t, 1, out[1].Idx)
}

func TestLimitSentencesStrictPrefix(t *testing.T) {
	// the long second sentence stops the scan even though the third
	// would still fit: no skipping
	sents := []Sentence{
		{Dist: 0.9, Idx: 0, Text: "one two"},
		{Dist: 0.8, Idx: 1, Text: strings.Repeat("w ", 19) + "w"}, // 20 words
		{Dist: 0.7, Idx: 2, Text: "three"},
	}

	out := LimitSentences(sents, 10)

	require.Len(t, out, 1)
	assert.Equal(t, 0, out[0].Idx)
}

func TestLimitPhrasesSkipsVerbsAndStopsAtMean(t *testing.T) {
	lexemes := []phrase.Lexeme{
		{Text: "cargo ship", Rank: 0.5, IDs: []int{1, 2}, Pos: "np"},
		{Text: "sailed", Rank: 0.3, IDs: []int{3}, Pos: "v"},
		{Text: "harbor", Rank: 0.15, IDs: []int{4}, Pos: "n"},
		{Text: "rope", Rank: 0.05, IDs: []int{5}, Pos: "n"},
	}
	// mean = 0.25: harbor and rope fall below it

	out := LimitPhrases(lexemes, 20)

	require.Equal(t, []string{"cargo ship"}, out)
}

func TestLimitPhrasesEarlyExitNotFilter(t *testing.T) {
	// a below-mean entry ends the scan; the later above-mean entry is
	// discarded because the stream is rank-sorted
	lexemes := []phrase.Lexeme{
		{Text: "alpha", Rank: 0.6, IDs: []int{1}, Pos: "n"},
		{Text: "verb", Rank: 0.2, IDs: []int{2}, Pos: "v"},
		{Text: "beta", Rank: 0.1, IDs: []int{3}, Pos: "n"},
		{Text: "gamma", Rank: 0.1, IDs: []int{4}, Pos: "n"},
	}

	out := LimitPhrases(lexemes, 20)

	require.Equal(t, []string{"alpha"}, out)
}

func TestLimitPhrasesEmpty(t *testing.T) {
	assert.Nil(t, LimitPhrases(nil, 20))
}

func TestLimitPhrasesNeverExceedsLimit(t *testing.T) {
	// equal ranks keep every entry at the mean, so only the count limit
	// can end the scan
	var lexemes []phrase.Lexeme
	for i := 0; i < 30; i++ {
		lexemes = append(lexemes, phrase.Lexeme{
			Text: strings.Repeat("x", i+1),
			Rank: 0.5,
			IDs:  []int{i + 1},
			Pos:  "n",
		})
	}

	out := LimitPhrases(lexemes, 20)

	require.Len(t, out, 20)
	assert.Equal(t, lexemes[0].Text, out[0])
	assert.Equal(t, lexemes[19].Text, out[19])
}

func TestScoreSentencesOrderAndTieBreak(t *testing.T) {
	lexemes := []phrase.Lexeme{
		{Text: "ship", Rank: 1.0, IDs: []int{1}, Pos: "n"},
	}
	kernel := BuildKernel(lexemes, minhash.DefaultSize)

	sents := []sentence.Sentence{
		{Tokens: []sentence.Token{
			{WordID: 5, Raw: "unrelated"},
			{WordID: 6, Raw: "words"},
		}},
		{Tokens: []sentence.Token{
			{WordID: 1, Raw: "ship"},
		}},
		{Tokens: []sentence.Token{
			{WordID: 7, Raw: "noise"},
			{WordID: 8, Raw: "floor"},
		}},
	}

	out := ScoreSentences(sents, kernel, minhash.DefaultSize)

	require.Len(t, out, 3)
	assert.Equal(t, 1, out[0].Idx, "the kernel-matching sentence ranks first")
	assert.Equal(t, "ship", out[0].Text)
	assert.Greater(t, out[0].Dist, out[1].Dist)

	// equal-distance sentences order by original index
	if out[1].Dist == out[2].Dist {
		assert.Less(t, out[1].Idx, out[2].Idx)
	}
}

func TestScoreSentencesDuplicateTextCollapses(t *testing.T) {
	kernel := BuildKernel([]phrase.Lexeme{{Text: "x", Rank: 1, IDs: []int{1}, Pos: "n"}}, 128)

	sents := []sentence.Sentence{
		{Tokens: []sentence.Token{{WordID: 1, Raw: "same"}}},
		{Tokens: []sentence.Token{{WordID: 1, Raw: "same"}}},
	}

	out := ScoreSentences(sents, kernel, 128)

	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].Idx, "the later occurrence wins the key")
}

func TestTextRendersInDocumentOrder(t *testing.T) {
	selected := []Sentence{
		{Dist: 0.9, Idx: 2, Text: "Second part ."},
		{Dist: 0.8, Idx: 0, Text: "First part ."},
	}

	got := Text(selected)

	assert.Equal(t, "First part. Second part.", got)
}
