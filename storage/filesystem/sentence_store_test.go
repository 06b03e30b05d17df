package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	sent "github.com/grafrank/grafrank/sentence"
)

func testSentences(docID string) []sent.Sentence {
	return []sent.Sentence{
		{DocID: docID, Digest: "a1", Tokens: []sent.Token{
			{WordID: 1, Raw: "ship", Root: "ship", Pos: sent.Noun, Keep: true, Idx: 0},
			{WordID: 2, Raw: "sails", Root: "sail", Pos: sent.Verb, Keep: true, Idx: 1},
		}},
		{DocID: docID, Digest: "a2", Tokens: []sent.Token{
			{WordID: 3, Raw: "harbor", Root: "harbor", Pos: sent.Noun, Keep: true, Idx: 2},
		}},
	}
}

func TestSentenceStoreRoundTrip(t *testing.T) {
	store, err := NewSentenceStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Write("d1", testSentences("d1")); err != nil {
		t.Fatal(err)
	}
	if err := store.Write("d2", testSentences("d2")); err != nil {
		t.Fatal(err)
	}

	ids, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != "d1" || ids[1] != "d2" {
		t.Fatalf("unexpected ids: %v", ids)
	}

	sents, err := store.Read("d1")
	if err != nil {
		t.Fatal(err)
	}
	if len(sents) != 2 || sents[0].Digest != "a1" {
		t.Fatalf("unexpected sentences: %+v", sents)
	}
}

func TestSentenceStoreReadMissing(t *testing.T) {
	store, err := NewSentenceStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := store.Read("nope"); err == nil {
		t.Fatal("expected error for missing doc")
	}
}

func TestSentenceStoreFindByRoots(t *testing.T) {
	store, err := NewSentenceStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Write("d1", testSentences("d1")); err != nil {
		t.Fatal(err)
	}

	var got []string
	cursor, err := store.FindByRoots([]string{"ship", "sail"}, 0, 10, func(sn sent.Sentence) error {
		got = append(got, sn.Digest)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "a1" {
		t.Fatalf("unexpected matches: %v", got)
	}
	if cursor != 2 {
		t.Fatalf("cursor = %d", cursor)
	}

	// resuming after the cursor yields nothing new
	got = nil
	_, err = store.FindByRoots([]string{"ship"}, cursor, 10, func(sn sent.Sentence) error {
		got = append(got, sn.Digest)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches after cursor, got %v", got)
	}
}

func TestCorpusStoreReadsTextAndRecords(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "alpha.txt"), []byte("Ships sail."), 0o644); err != nil {
		t.Fatal(err)
	}
	records := `{"id":"beta","text":"Harbors wait."}
{"text":"No id here."}
`
	if err := os.WriteFile(filepath.Join(dir, "batch.jsonl"), []byte(records), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := NewCorpusStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	docs, err := store.Documents()
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 docs, got %d", len(docs))
	}

	byID := map[string]string{}
	for _, d := range docs {
		if d.ID == "" {
			t.Fatalf("doc without id: %+v", d)
		}
		byID[d.ID] = d.Text
	}
	if byID["alpha"] != "Ships sail." {
		t.Fatalf("txt doc not loaded: %v", byID)
	}
	if byID["beta"] != "Harbors wait." {
		t.Fatalf("jsonl doc not loaded: %v", byID)
	}
}
