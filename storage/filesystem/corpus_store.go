// Package filesystem stores corpora as plain files in a directory.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/grafrank/grafrank/parse"
	"github.com/grafrank/grafrank/render"
	"github.com/grafrank/grafrank/storage"
)

// CorpusStore reads a corpus from a directory. Every .txt file becomes
// one document with the file name as its id; every .jsonl file holds
// one document record per line.
type CorpusStore struct {
	dir string
}

var _ storage.CorpusReader = (*CorpusStore)(nil)

func NewCorpusStore(dir string) (*CorpusStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}
	return &CorpusStore{dir: dir}, nil
}

func (s *CorpusStore) Documents() ([]parse.Document, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var docs []parse.Document
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		path := filepath.Join(s.dir, file.Name())
		switch filepath.Ext(file.Name()) {
		case ".txt":
			doc, err := ReadTextDoc(path)
			if err != nil {
				return nil, err
			}
			docs = append(docs, doc)
		case ".jsonl":
			batch, err := ReadDocFile(path)
			if err != nil {
				return nil, err
			}
			docs = append(docs, batch...)
		}
	}

	return docs, nil
}

// ReadTextDoc reads a plain text file as a single document. The file
// name without extension becomes the document id.
func ReadTextDoc(path string) (parse.Document, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return parse.Document{}, fmt.Errorf("IO error: %w", err)
	}

	name := filepath.Base(path)
	id := strings.TrimSuffix(name, filepath.Ext(name))

	return parse.Document{ID: id, Text: string(f)}, nil
}

// ReadDocFile reads document records from a JSON lines file. Records
// without an id get a generated one.
func ReadDocFile(path string) ([]parse.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	docs, err := render.ReadDocuments(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	for i := range docs {
		if docs[i].ID == "" {
			docs[i].ID = uuid.NewString()
		}
	}

	return docs, nil
}
