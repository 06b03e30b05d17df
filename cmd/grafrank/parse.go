package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/grafrank/grafrank/config"
	"github.com/grafrank/grafrank/lexicon"
	"github.com/grafrank/grafrank/parse"
	"github.com/grafrank/grafrank/render"
	"github.com/grafrank/grafrank/tag"
)

func parseCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "parse",
		Usage: "parse the corpus into sentence records, one JSON line each",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "email",
				Usage: "filter quoted email lines before parsing",
			},
		},
		Action: func(c *cli.Context) error {
			docs, err := loadDocs(c)
			if err != nil {
				return err
			}

			parser := parse.NewParser(tag.NewEnglish(), lexicon.NewRegistry())
			out := render.NewJSONLines(os.Stdout)

			for _, doc := range docs {
				sents, err := parser.Doc(doc, c.Bool("email"))
				if err != nil {
					return err
				}
				if err := out.Sentences(sents); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
