package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/grafrank/grafrank/config"
	"github.com/grafrank/grafrank/render"
)

func sentencesCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "sentences",
		Usage: "rank the corpus sentences by distance to the key phrases",
		Flags: pipelineFlags(cfg),
		Action: func(c *cli.Context) error {
			docs, err := loadDocs(c)
			if err != nil {
				return err
			}

			res, err := newRunner(c).Run(docs)
			if err != nil {
				return err
			}

			if c.Bool("json") {
				return render.NewJSONLines(os.Stdout).Summary(res.Ranked)
			}

			render.NewText(os.Stdout).Ranked(res.Ranked)
			return nil
		},
	}
}
