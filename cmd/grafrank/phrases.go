package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/grafrank/grafrank/config"
	"github.com/grafrank/grafrank/render"
)

func phrasesCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "phrases",
		Usage: "rank the corpus and print the normalized lexemes",
		Flags: append(pipelineFlags(cfg),
			&cli.StringFlag{
				Name:  "save",
				Usage: "persist the lexemes under this run name",
			},
		),
		Action: func(c *cli.Context) error {
			docs, err := loadDocs(c)
			if err != nil {
				return err
			}

			res, err := newRunner(c).Run(docs)
			if err != nil {
				return err
			}

			if run := c.String("save"); run != "" {
				pool := &Pool{}
				defer pool.Close()

				repo, err := NewPhraseRepository(pool, c.String("repo"))
				if err != nil {
					return err
				}
				if err := repo.WritePhrases(run, res.Lexemes); err != nil {
					return err
				}
			}

			if c.Bool("json") {
				return render.NewJSONLines(os.Stdout).Lexemes(res.Lexemes)
			}

			render.NewText(os.Stdout).Lexemes(res.Lexemes)
			return nil
		},
	}
}
