package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/grafrank/grafrank/config"
	"github.com/grafrank/grafrank/render"
)

func summaryCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "run the full pipeline and print key phrases and summary",
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

			r := render.NewText(os.Stdout)
			r.Phrases(res.Phrases)
			fmt.Fprintln(os.Stdout)
			r.Summary(res.Summary)

			return nil
		},
	}
}
