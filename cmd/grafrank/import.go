package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/grafrank/grafrank/config"
	"github.com/grafrank/grafrank/lexicon"
	"github.com/grafrank/grafrank/parse"
	"github.com/grafrank/grafrank/tag"
)

func importCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "parse the corpus and store the sentence records",
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

			pool := &Pool{}
			defer pool.Close()

			repo, err := NewSentenceRepository(pool, c.String("repo"))
			if err != nil {
				return err
			}

			parser := parse.NewParser(tag.NewEnglish(), lexicon.NewRegistry())

			uiprogress.Start()
			bar := uiprogress.AddBar(len(docs))
			bar.AppendCompleted()
			bar.PrependElapsed()

			count := 0
			for _, doc := range docs {
				sents, err := parser.Doc(doc, c.Bool("email"))
				if err != nil {
					uiprogress.Stop()
					return fmt.Errorf("failed to parse doc %s: %w", doc.ID, err)
				}

				if err := repo.Write(doc.ID, sents); err != nil {
					uiprogress.Stop()
					return fmt.Errorf("failed to write doc %s: %w", doc.ID, err)
				}
				count++
				bar.Incr()
			}
			uiprogress.Stop()

			fmt.Fprintf(os.Stdout, "Successfully imported %d docs from %s to %s\n", count, c.String("corpus"), c.String("repo"))
			return nil
		},
	}
}
