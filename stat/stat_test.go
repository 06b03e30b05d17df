package stat

import (
	"testing"

	sent "github.com/grafrank/grafrank/sentence"
)

func sentences() []sent.Sentence {
	return []sent.Sentence{
		{Tokens: []sent.Token{
			{WordID: 1, Root: "ship", Keep: true},
			{Root: "the"},
			{WordID: 2, Root: "sail", Keep: true},
			{Root: "."},
		}},
		{Tokens: []sent.Token{
			{WordID: 3, Root: "harbor", Keep: true},
			{Root: "."},
		}},
	}
}

func TestAggregate(t *testing.T) {
	h := NewHandler()
	h.Aggregate(sentences())

	stats := h.Get()
	if stats.NumSentences != 2 {
		t.Fatalf("NumSentences = %d", stats.NumSentences)
	}
	if stats.NumTokens != 6 {
		t.Fatalf("NumTokens = %d", stats.NumTokens)
	}
	if stats.NumKept != 3 {
		t.Fatalf("NumKept = %d", stats.NumKept)
	}
	if stats.TokensPerSentenceMean != 3 {
		t.Fatalf("TokensPerSentenceMean = %d", stats.TokensPerSentenceMean)
	}
	if stats.TokensPerSentenceDis[4] != 1 || stats.TokensPerSentenceDis[2] != 1 {
		t.Fatalf("distribution = %v", stats.TokensPerSentenceDis)
	}
}

func TestAggregateAccumulates(t *testing.T) {
	h := NewHandler()
	h.Aggregate(sentences())
	h.Aggregate(sentences())

	if got := h.Get().NumSentences; got != 4 {
		t.Fatalf("NumSentences = %d", got)
	}
}

func TestKeptRatioEmpty(t *testing.T) {
	if got := (Stats{}).KeptRatio(); got != 0 {
		t.Fatalf("KeptRatio = %f", got)
	}
}
