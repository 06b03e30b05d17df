// Package pipeline wires the full ranking-and-extraction run: parse,
// graph, rank, phrases, sentence scoring and assembly, with the three
// materialization barriers between them.
package pipeline

import (
	"errors"
	"log/slog"

	"github.com/grafrank/grafrank/chunk"
	"github.com/grafrank/grafrank/graph"
	"github.com/grafrank/grafrank/lexicon"
	"github.com/grafrank/grafrank/minhash"
	"github.com/grafrank/grafrank/parse"
	"github.com/grafrank/grafrank/phrase"
	"github.com/grafrank/grafrank/sentence"
	"github.com/grafrank/grafrank/summary"
	"github.com/grafrank/grafrank/tag"
)

// Options tunes one pipeline run.
type Options struct {
	Window        int
	Damping       float64
	Tol           float64
	MaxIter       int
	SignatureSize int
	PhraseLimit   int
	WordLimit     int

	// DropUnaligned selects the policy for chunker phrases without a
	// contiguous token alignment.
	DropUnaligned bool

	// IsEmail enables the quoted-email pre-filter.
	IsEmail bool
}

func DefaultOptions() Options {
	return Options{
		Window:        graph.DefaultWindow,
		Damping:       0.85,
		Tol:           1e-6,
		MaxIter:       100,
		SignatureSize: minhash.DefaultSize,
		PhraseLimit:   summary.DefaultPhraseLimit,
		WordLimit:     summary.DefaultWordLimit,
		DropUnaligned: true,
	}
}

// Result carries the output of every stage, expressible as one record
// per line for pipelining.
type Result struct {
	Sentences []sentence.Sentence
	Lexemes   []phrase.Lexeme
	Ranked    []summary.Sentence

	// Selected is the budgeted strict prefix of Ranked.
	Selected []summary.Sentence

	// Phrases are the budgeted key phrases; Summary the rendered text.
	Phrases []string
	Summary string

	// Approximate is set when rank propagation hit its iteration cap.
	Approximate bool
}

// Runner owns the collaborators and options of a run. Each Run uses a
// fresh registry, so runs are deterministic and isolated.
type Runner struct {
	Tagger  tag.Tagger
	Chunker chunk.Chunker
	Opts    Options
	Log     *slog.Logger
}

func NewRunner(opts Options) *Runner {
	tagger := tag.NewEnglish()
	return &Runner{
		Tagger:  tagger,
		Chunker: chunk.NewRule(tagger),
		Opts:    opts,
		Log:     slog.Default(),
	}
}

// Run executes the pipeline over the documents. A malformed document is
// skipped with a warning; collaborator failures degrade to zero tokens
// for the affected sentence. An empty corpus is fatal.
func (r *Runner) Run(docs []parse.Document) (*Result, error) {
	if r.Log == nil {
		r.Log = slog.Default()
	}

	registry := lexicon.NewRegistry()
	parser := parse.NewParser(r.Tagger, registry)

	var sents []sentence.Sentence
	g := graph.New()

	for _, doc := range docs {
		parsed, err := parser.Doc(doc, r.Opts.IsEmail)
		if err != nil {
			var inErr *parse.InputError
			if errors.As(err, &inErr) {
				// scoped to this document; state committed so far stays
				// valid
				r.Log.Warn("skipping malformed document", "doc", inErr.DocID, "reason", inErr.Reason)
				continue
			}
			return nil, err
		}

		// accumulate this document into its own subgraph, then merge;
		// the same merge step serves parallel builders
		sub := graph.New()
		for _, s := range parsed {
			sub.AddSentence(s, r.Opts.Window)
		}
		g.Merge(sub)

		sents = append(sents, parsed...)
	}

	// barrier: the graph is complete, rank may start
	rank := g.Rank(graph.RankOptions{Damping: r.Opts.Damping, Tol: r.Opts.Tol, MaxIter: r.Opts.MaxIter})
	if !rank.Converged {
		r.Log.Warn("rank propagation hit the iteration cap, result is approximate", "iterations", rank.Iterations)
	}

	// barrier: the rank map is complete, phrases and scoring may start
	normalizer := phrase.NewNormalizer(r.Chunker, rank.Ranks)
	normalizer.DropUnaligned = r.Opts.DropUnaligned

	lexemes, err := normalizer.Normalize(sents)
	if err != nil {
		return nil, err
	}

	// barrier: the kernel and sentence stream are complete, assembly
	// may start
	kernel := summary.BuildKernel(lexemes, r.Opts.SignatureSize)
	ranked := summary.ScoreSentences(sents, kernel, r.Opts.SignatureSize)

	selected := summary.LimitSentences(ranked, r.Opts.WordLimit)

	return &Result{
		Sentences:   sents,
		Lexemes:     lexemes,
		Ranked:      ranked,
		Selected:    selected,
		Phrases:     summary.LimitPhrases(lexemes, r.Opts.PhraseLimit),
		Summary:     summary.Text(selected),
		Approximate: !rank.Converged,
	}, nil
}
