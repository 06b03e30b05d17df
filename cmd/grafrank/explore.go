package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/grafrank/grafrank/config"
	"github.com/grafrank/grafrank/explore"
	"github.com/grafrank/grafrank/render"
)

func exploreCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "explore",
		Usage: "interactive prompt over a stored phrase run",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "run",
				Usage: "phrase run name (default: the only stored run)",
			},
		},
		Action: func(c *cli.Context) error {
			pool := &Pool{}
			defer pool.Close()

			phraseRepo, err := NewPhraseRepository(pool, c.String("repo"))
			if err != nil {
				return err
			}
			sentRepo, err := NewSentenceRepository(pool, c.String("repo"))
			if err != nil {
				return err
			}

			run := c.String("run")
			if run == "" {
				runs, err := phraseRepo.Runs()
				if err != nil {
					return err
				}
				if len(runs) != 1 {
					return cli.Exit("use --run to pick one of the stored runs", 1)
				}
				run = runs[0]
			}

			lexemes, err := phraseRepo.Phrases(run)
			if err != nil {
				return err
			}

			r := render.NewText(os.Stdout)
			r.HasColor = true

			return explore.NewHandler(lexemes, sentRepo, r).Run()
		},
	}
}
