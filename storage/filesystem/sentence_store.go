package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/grafrank/grafrank/render"
	sent "github.com/grafrank/grafrank/sentence"
	"github.com/grafrank/grafrank/storage"
)

// SentenceStore keeps parsed sentence records as one JSON lines file
// per document.
type SentenceStore struct {
	dir string
}

var _ storage.SentenceRepository = (*SentenceStore)(nil)

func NewSentenceStore(dir string) (*SentenceStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &SentenceStore{dir: dir}, nil
}

func (s *SentenceStore) List() ([]string, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, file := range files {
		if filepath.Ext(file.Name()) == ".jsonl" {
			ids = append(ids, strings.TrimSuffix(file.Name(), ".jsonl"))
		}
	}
	sort.Strings(ids)

	return ids, nil
}

func (s *SentenceStore) Read(docID string) ([]sent.Sentence, error) {
	f, err := os.Open(s.path(docID))
	if err != nil {
		return nil, fmt.Errorf("doc not found: %s", docID)
	}
	defer f.Close()

	return render.ReadSentences(f)
}

// FindByRoots scans all documents in memory. The cursor counts scanned
// sentences across the sorted document order.
func (s *SentenceStore) FindByRoots(roots []string, after storage.Cursor, limit int, onMatch func(sent.Sentence) error) (storage.Cursor, error) {
	ids, err := s.List()
	if err != nil {
		return after, err
	}

	cursor := storage.Cursor(0)
	yielded := 0

	for _, id := range ids {
		sents, err := s.Read(id)
		if err != nil {
			return after, err
		}

		for _, sn := range sents {
			cursor++
			if cursor <= after {
				continue
			}
			if yielded >= limit {
				return cursor - 1, nil
			}
			if !hasRoots(sn, roots) {
				continue
			}
			if err := onMatch(sn); err != nil {
				return cursor, err
			}
			yielded++
		}
	}

	return cursor, nil
}

func (s *SentenceStore) Write(docID string, sents []sent.Sentence) error {
	f, err := os.Create(s.path(docID))
	if err != nil {
		return fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	return render.NewJSONLines(f).Sentences(sents)
}

func (s *SentenceStore) path(docID string) string {
	return filepath.Join(s.dir, docID+".jsonl")
}

func hasRoots(sn sent.Sentence, roots []string) bool {
	for _, root := range roots {
		found := false
		for _, tok := range sn.Tokens {
			if tok.Root == root {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
