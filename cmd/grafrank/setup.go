package main

import (
	"fmt"
	"os"

	"github.com/grafrank/grafrank/storage"
	"github.com/grafrank/grafrank/storage/filesystem"
	"github.com/grafrank/grafrank/storage/sqlite/zombiezen"
)

// NewSentenceRepository picks the backend from the path: a directory is
// a filesystem store of JSON lines files, anything else a sqlite file.
func NewSentenceRepository(p *Pool, path string) (storage.SentenceRepository, error) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return filesystem.NewSentenceStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	if err := zombiezen.CreateSchemas(pool, "sentences.sql"); err != nil {
		return nil, fmt.Errorf("failed to create sentence tables: %w", err)
	}
	return zombiezen.NewSentenceHandler(pool), nil
}

func NewPhraseRepository(p *Pool, path string) (storage.PhraseRepository, error) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return nil, fmt.Errorf("phrase storage needs a sqlite file, got directory: %s", path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	if err := zombiezen.CreateSchemas(pool, "phrases.sql"); err != nil {
		return nil, fmt.Errorf("failed to create phrase tables: %w", err)
	}
	return zombiezen.NewPhraseHandler(pool), nil
}
