package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/grafrank/grafrank/config"
	"github.com/grafrank/grafrank/lexicon"
	"github.com/grafrank/grafrank/parse"
	"github.com/grafrank/grafrank/stat"
	"github.com/grafrank/grafrank/tag"
)

func statCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "stat",
		Usage: "print corpus statistics",
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
			hdl := stat.NewHandler()

			for _, doc := range docs {
				sents, err := parser.Doc(doc, c.Bool("email"))
				if err != nil {
					return err
				}
				hdl.Aggregate(sents)
			}

			stats := hdl.Get()
			fmt.Fprintf(os.Stdout, "Num docs %d, num sentences %d, tokens per sentence %d, kept ratio %0.2f\n",
				len(docs), stats.NumSentences, stats.TokensPerSentenceMean, stats.KeptRatio())

			return nil
		},
	}
}
