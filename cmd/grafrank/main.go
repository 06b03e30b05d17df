package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/grafrank/grafrank/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fprintErr(err)
		os.Exit(1)
	}

	app := newApp(cfg)
	if err := app.Run(os.Args); err != nil {
		fprintErr(err)
		os.Exit(1)
	}
}

func fprintErr(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "grafrank: %v\n", err)
}

func newApp(cfg config.Config) *cli.App {
	return &cli.App{
		Name:  "grafrank",
		Usage: "key phrase extraction and extractive summarization",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "corpus",
				Usage: "corpus directory (.txt and .jsonl files)",
				Value: cfg.Corpus,
			},
			&cli.StringFlag{
				Name:  "repo",
				Usage: "sentence repository: a directory or a sqlite file",
				Value: cfg.DB,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log pipeline progress",
			},
		},
		Before: func(c *cli.Context) error {
			level := slog.LevelWarn
			if c.Bool("verbose") {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
		Commands: []*cli.Command{
			parseCommand(cfg),
			phrasesCommand(cfg),
			sentencesCommand(cfg),
			summaryCommand(cfg),
			importCommand(cfg),
			statCommand(cfg),
			exploreCommand(cfg),
		},
	}
}
