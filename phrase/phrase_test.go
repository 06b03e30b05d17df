package phrase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafrank/grafrank/sentence"
)

type stubChunker struct {
	phrases []string
}

func (s stubChunker) NounPhrases(string) []string {
	return s.phrases
}

func tok(id int, raw, root string, pos sentence.Class, idx int) sentence.Token {
	return sentence.Token{WordID: id, Raw: raw, Root: root, Pos: pos, Keep: id > 0, Idx: idx}
}

func TestPhraseRankFormula(t *testing.T) {
	// member single ranks 0.3 and 0.4 with a global max single of 0.5:
	// phrase rank before normalization is sqrt(0.09+0.16)/2 + 0.5 = 0.75
	ranks := map[string]float64{"alpha": 0.3, "beta": 0.4, "gamma": 0.5}

	sents := []sentence.Sentence{
		{Tokens: []sentence.Token{
			tok(1, "alpha", "alpha", sentence.Noun, 0),
			tok(2, "beta", "beta", sentence.Noun, 1),
			tok(0, ".", ".", sentence.Punct, 2),
		}},
		{Tokens: []sentence.Token{
			tok(3, "gamma", "gamma", sentence.Noun, 3),
			tok(0, ".", ".", sentence.Punct, 4),
		}},
	}

	n := NewNormalizer(stubChunker{}, ranks)
	out, err := n.Normalize(sents)
	require.NoError(t, err)

	// singles alpha, beta, gamma plus the phrase "alpha beta"
	require.Len(t, out, 4)

	sum := 0.3 + 0.4 + 0.5 + 0.75
	var got *Lexeme
	for i := range out {
		if out[i].Pos == PosPhrase {
			got = &out[i]
		}
	}
	require.NotNil(t, got, "expected a phrase lexeme")

	assert.Equal(t, "alpha beta", got.Text)
	assert.Equal(t, []int{1, 2}, got.IDs)
	assert.InDelta(t, 0.75/sum, got.Rank, 1e-12)

	// the phrase outranks every single word
	assert.Equal(t, PosPhrase, out[0].Pos)
}

func TestNormalizedRanksSumToOne(t *testing.T) {
	ranks := map[string]float64{"alpha": 0.3, "beta": 0.4, "gamma": 0.5}

	sents := []sentence.Sentence{
		{Tokens: []sentence.Token{
			tok(1, "alpha", "alpha", sentence.Noun, 0),
			tok(2, "beta", "beta", sentence.Noun, 1),
			tok(0, "and", "and", sentence.Other, 2),
			tok(3, "gamma", "gamma", sentence.Verb, 3),
		}},
	}

	out, err := NewNormalizer(stubChunker{}, ranks).Normalize(sents)
	require.NoError(t, err)

	sum := 0.0
	for _, rl := range out {
		sum += rl.Rank
		assert.NotEmpty(t, rl.IDs, "lexeme %q has empty ids", rl.Text)
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestEmptyCorpus(t *testing.T) {
	out, err := NewNormalizer(stubChunker{}, map[string]float64{}).Normalize([]sentence.Sentence{
		{Tokens: []sentence.Token{tok(0, "the", "the", sentence.Other, 0)}},
	})

	require.ErrorIs(t, err, ErrEmptyCorpus)
	assert.Nil(t, out)
}

func TestChunkerSubPhraseAlignment(t *testing.T) {
	ranks := map[string]float64{"alpha": 0.2, "beta": 0.3, "gamma": 0.1}

	sents := []sentence.Sentence{
		{Tokens: []sentence.Token{
			tok(1, "alpha", "alpha", sentence.Noun, 0),
			tok(2, "beta", "beta", sentence.Noun, 1),
			tok(3, "gamma", "gamma", sentence.Noun, 2),
			tok(0, ".", ".", sentence.Punct, 3),
		}},
	}

	out, err := NewNormalizer(stubChunker{phrases: []string{"beta gamma"}}, ranks).Normalize(sents)
	require.NoError(t, err)

	var np *Lexeme
	for i := range out {
		if out[i].Pos == PosPhrase {
			require.Nil(t, np, "expected exactly one phrase")
			np = &out[i]
		}
	}
	require.NotNil(t, np)
	assert.Equal(t, "beta gamma", np.Text)
	assert.Equal(t, []int{2, 3}, np.IDs)
}

func TestUnalignedChunkDropped(t *testing.T) {
	ranks := map[string]float64{"alpha": 0.2, "beta": 0.3}

	sents := []sentence.Sentence{
		{Tokens: []sentence.Token{
			tok(1, "alpha", "alpha", sentence.Noun, 0),
			tok(2, "beta", "beta", sentence.Noun, 1),
			tok(0, ".", ".", sentence.Punct, 2),
		}},
	}

	out, err := NewNormalizer(stubChunker{phrases: []string{"other words"}}, ranks).Normalize(sents)
	require.NoError(t, err)

	for _, rl := range out {
		assert.NotEqual(t, PosPhrase, rl.Pos, "unaligned chunk should be dropped: %+v", rl)
	}
}

func TestUnalignedChunkFallback(t *testing.T) {
	ranks := map[string]float64{"alpha": 0.2, "beta": 0.3}

	sents := []sentence.Sentence{
		{Tokens: []sentence.Token{
			tok(1, "alpha", "alpha", sentence.Noun, 0),
			tok(2, "beta", "beta", sentence.Noun, 1),
			tok(0, ".", ".", sentence.Punct, 2),
		}},
	}

	n := NewNormalizer(stubChunker{phrases: []string{"other words"}}, ranks)
	n.DropUnaligned = false

	out, err := n.Normalize(sents)
	require.NoError(t, err)

	var np *Lexeme
	for i := range out {
		if out[i].Pos == PosPhrase {
			np = &out[i]
		}
	}
	require.NotNil(t, np, "fallback policy should emit the whole run")
	assert.Equal(t, []int{1, 2}, np.IDs)
}

func TestVerbRunNotEmittedWhole(t *testing.T) {
	ranks := map[string]float64{"alpha": 0.2, "run": 0.3}

	sents := []sentence.Sentence{
		{Tokens: []sentence.Token{
			tok(1, "alpha", "alpha", sentence.Noun, 0),
			tok(2, "runs", "run", sentence.Verb, 1),
			tok(0, ".", ".", sentence.Punct, 2),
		}},
	}

	out, err := NewNormalizer(stubChunker{}, ranks).Normalize(sents)
	require.NoError(t, err)

	for _, rl := range out {
		assert.NotEqual(t, PosPhrase, rl.Pos, "run containing a verb must not be emitted whole")
	}
}

func TestTrailingRunFlushed(t *testing.T) {
	// no trailing punctuation: the run reaching the sentence end is
	// still a phrase boundary
	ranks := map[string]float64{"alpha": 0.2, "beta": 0.3}

	sents := []sentence.Sentence{
		{Tokens: []sentence.Token{
			tok(1, "alpha", "alpha", sentence.Noun, 0),
			tok(2, "beta", "beta", sentence.Noun, 1),
		}},
	}

	out, err := NewNormalizer(stubChunker{}, ranks).Normalize(sents)
	require.NoError(t, err)

	found := false
	for _, rl := range out {
		if rl.Pos == PosPhrase {
			found = true
		}
	}
	assert.True(t, found, "trailing run should be flushed")
}

func TestSameIdentitySetLaterTextWins(t *testing.T) {
	// both runs resolve to the identity set {1, 2}; the surface of the
	// later occurrence survives under the shared key
	ranks := map[string]float64{"ship": 0.4, "sail": 0.3}

	sents := []sentence.Sentence{
		{Tokens: []sentence.Token{
			tok(1, "ship", "ship", sentence.Noun, 0),
			tok(2, "sail", "sail", sentence.Noun, 1),
			tok(0, ".", ".", sentence.Punct, 2),
		}},
		{Tokens: []sentence.Token{
			tok(1, "ships", "ship", sentence.Noun, 3),
			tok(2, "sails", "sail", sentence.Noun, 4),
			tok(0, ".", ".", sentence.Punct, 5),
		}},
	}

	out, err := NewNormalizer(stubChunker{}, ranks).Normalize(sents)
	require.NoError(t, err)

	var phrases []Lexeme
	for _, rl := range out {
		if rl.Pos == PosPhrase {
			phrases = append(phrases, rl)
		}
	}

	require.Len(t, phrases, 1, "duplicate identity sets collapse to one lexeme")
	assert.Equal(t, "ships sails", phrases[0].Text)
	assert.Equal(t, []int{1, 2}, phrases[0].IDs)
}

func TestNormalizeDeterministic(t *testing.T) {
	ranks := map[string]float64{"alpha": 0.3, "beta": 0.4, "gamma": 0.5}

	sents := []sentence.Sentence{
		{Tokens: []sentence.Token{
			tok(1, "alpha", "alpha", sentence.Noun, 0),
			tok(2, "beta", "beta", sentence.Noun, 1),
			tok(3, "gamma", "gamma", sentence.Noun, 2),
			tok(0, ".", ".", sentence.Punct, 3),
		}},
	}

	a, err := NewNormalizer(stubChunker{}, ranks).Normalize(sents)
	require.NoError(t, err)
	b, err := NewNormalizer(stubChunker{}, ranks).Normalize(sents)
	require.NoError(t, err)

	require.Equal(t, a, b)
}
