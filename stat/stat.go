// Package stat aggregates corpus statistics over parsed sentence
// records.
package stat

import (
	sent "github.com/grafrank/grafrank/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	NumKept               int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int
}

// KeptRatio is the fraction of tokens carrying a registry identity.
func (s Stats) KeptRatio() float64 {
	if s.NumTokens == 0 {
		return 0
	}
	return float64(s.NumKept) / float64(s.NumTokens)
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(sents []sent.Sentence) {
	h.stats.NumSentences += len(sents)

	for _, sn := range sents {
		h.stats.NumTokens += len(sn.Tokens)
		h.stats.NumKept += len(sn.Kept())
		h.stats.TokensPerSentenceDis[len(sn.Tokens)]++
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}
