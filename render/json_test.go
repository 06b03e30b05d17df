package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/grafrank/grafrank/phrase"
	sent "github.com/grafrank/grafrank/sentence"
	"github.com/grafrank/grafrank/summary"
)

func TestJSONLinesSentencesRoundTrip(t *testing.T) {
	in := []sent.Sentence{
		{DocID: "d1", Digest: "abc", Tokens: []sent.Token{
			{WordID: 1, Raw: "ship", Root: "ship", Pos: sent.Noun, Keep: true, Idx: 0},
		}},
		{DocID: "d1", Digest: "def", Tokens: []sent.Token{
			{WordID: 2, Raw: "sails", Root: "sail", Pos: sent.Verb, Keep: true, Idx: 1},
		}},
	}

	var buf bytes.Buffer
	if err := NewJSONLines(&buf).Sentences(in); err != nil {
		t.Fatal(err)
	}

	if lines := strings.Count(buf.String(), "\n"); lines != 2 {
		t.Fatalf("expected 2 lines, got %d", lines)
	}

	out, err := ReadSentences(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if out[0].Digest != "abc" || out[1].Tokens[0].Root != "sail" {
		t.Fatalf("round trip mangled records: %+v", out)
	}
}

func TestJSONLinesLexemesRoundTrip(t *testing.T) {
	in := []phrase.Lexeme{
		{Text: "cargo ship", Rank: 0.4, IDs: []int{1, 2}, Pos: "np"},
	}

	var buf bytes.Buffer
	if err := NewJSONLines(&buf).Lexemes(in); err != nil {
		t.Fatal(err)
	}

	out, err := ReadLexemes(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Text != "cargo ship" || len(out[0].IDs) != 2 {
		t.Fatalf("round trip mangled records: %+v", out)
	}
}

func TestReadDocumentsSkipsBlankLines(t *testing.T) {
	input := `{"id":"d1","text":"hello"}

{"id":"d2","text":"world"}
`
	docs, err := ReadDocuments(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[1].ID != "d2" {
		t.Fatalf("unexpected doc: %+v", docs[1])
	}
}

func TestReadDocumentsBadLine(t *testing.T) {
	if _, err := ReadDocuments(strings.NewReader("{not json}\n")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestTextSummary(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf)
	r.Summary("Ships sail.")

	if got := buf.String(); got != "Ships sail.\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestTextRankedPrefix(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf)
	r.Ranked([]summary.Sentence{{Dist: 0.5, Idx: 3, Text: "one\ntwo"}})

	got := buf.String()
	if !strings.Contains(got, "one two") {
		t.Fatalf("newlines should flatten, got %q", got)
	}
	if !strings.Contains(got, "0.5000") {
		t.Fatalf("expected distance prefix, got %q", got)
	}
}
