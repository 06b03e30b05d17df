package para

import (
	"strings"
	"testing"
)

func TestSplitParagraphs(t *testing.T) {
	text := "first line\nsecond line\n\n\nthird line\n"

	grafs := Split(text)

	if len(grafs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %v", len(grafs), grafs)
	}
	if grafs[0] != "first line\nsecond line" {
		t.Errorf("unexpected first paragraph: %q", grafs[0])
	}
	if grafs[1] != "third line" {
		t.Errorf("unexpected second paragraph: %q", grafs[1])
	}
}

func TestSplitEmpty(t *testing.T) {
	if grafs := Split("\n\n  \n"); len(grafs) != 0 {
		t.Fatalf("expected no paragraphs, got %v", grafs)
	}
}

func TestFilterQuotesBlanksQuotedLines(t *testing.T) {
	text := "novel text here\n> quoted reply\n> more quoted\nmore novel text"

	grafs := FilterQuotes(text, false)

	if len(grafs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %v", len(grafs), grafs)
	}
	for _, g := range grafs {
		if strings.Contains(g, "quoted") {
			t.Errorf("quoted text leaked into paragraph: %q", g)
		}
	}
}

func TestFilterQuotesForwardedBlock(t *testing.T) {
	text := "the actual message\n---------- Forwarded message ----------\nold forwarded content"

	grafs := FilterQuotes(text, true)

	if len(grafs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d: %v", len(grafs), grafs)
	}
	if grafs[0] != "the actual message" {
		t.Errorf("unexpected paragraph: %q", grafs[0])
	}
}

func TestFilterQuotesNonPrintable(t *testing.T) {
	grafs := FilterQuotes("plain\x00 text", true)

	if len(grafs) != 1 || grafs[0] != "plain text" {
		t.Fatalf("expected control bytes stripped, got %v", grafs)
	}
}
