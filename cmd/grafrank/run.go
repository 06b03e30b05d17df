package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/grafrank/grafrank/config"
	"github.com/grafrank/grafrank/parse"
	"github.com/grafrank/grafrank/pipeline"
	"github.com/grafrank/grafrank/render"
	"github.com/grafrank/grafrank/storage/filesystem"
)

// pipelineFlags are shared by every command that executes a run.
func pipelineFlags(cfg config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "window",
			Usage: "co-occurrence window size",
			Value: cfg.Window,
		},
		&cli.IntFlag{
			Name:  "phrase-limit",
			Usage: "maximum key phrases",
			Value: cfg.PhraseLimit,
		},
		&cli.IntFlag{
			Name:  "word-limit",
			Usage: "summary word budget",
			Value: cfg.WordLimit,
		},
		&cli.BoolFlag{
			Name:  "email",
			Usage: "filter quoted email lines before parsing",
		},
		&cli.BoolFlag{
			Name:  "keep-unaligned",
			Usage: "fall back to the whole token run when a chunk does not align",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "emit JSON lines instead of text",
		},
	}
}

func newRunner(c *cli.Context) *pipeline.Runner {
	opts := pipeline.DefaultOptions()
	opts.Window = c.Int("window")
	opts.PhraseLimit = c.Int("phrase-limit")
	opts.WordLimit = c.Int("word-limit")
	opts.IsEmail = c.Bool("email")
	opts.DropUnaligned = !c.Bool("keep-unaligned")

	return pipeline.NewRunner(opts)
}

// loadDocs reads the corpus: "-" means document records on stdin, any
// other value a corpus directory.
func loadDocs(c *cli.Context) ([]parse.Document, error) {
	corpus := c.String("corpus")
	if corpus == "-" {
		return render.ReadDocuments(os.Stdin)
	}

	store, err := filesystem.NewCorpusStore(corpus)
	if err != nil {
		return nil, err
	}
	return store.Documents()
}
