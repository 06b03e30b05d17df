package tag

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/grafrank/grafrank/sentence"
)

// English is a self-contained rule-based tagger producing Penn-style
// tags. It combines a closed-class lexicon, a small irregular verb table
// and suffix rules, falling back to NN.
//
// Known limitations:
//
//   - No context model: "saw" is always tagged as a past verb, never as
//     a noun.
//   - Single-letter abbreviations (m., s.) still end sentences.
//   - Doubling heuristics occasionally overcorrect ("added" lemmatizes
//     to "ad").
type English struct{}

func NewEnglish() *English {
	return &English{}
}

var _ Tagger = (*English)(nil)

var (
	tokenPat    = regexp.MustCompile(`[A-Za-z0-9]+(?:['’-][A-Za-z0-9]+)*|[^\sA-Za-z0-9]+`)
	wordPat     = regexp.MustCompile(`[A-Za-z0-9]`)
	digitPat    = regexp.MustCompile(`^\d[\d,.]*$`)
	boundaryPat = regexp.MustCompile(`[.!?]+["')\]]?(\s+|$)`)
)

// abbreviations that do not terminate a sentence
var abbrev = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"st": true, "vs": true, "etc": true, "inc": true, "ltd": true,
	"e.g": true, "i.e": true, "fig": true, "no": true,
}

// Sentences splits paragraph text on terminal punctuation followed by
// whitespace, skipping boundaries after known abbreviations.
func (e *English) Sentences(text string) []string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	if text == "" {
		return nil
	}

	var sents []string
	start := 0

	for _, loc := range boundaryPat.FindAllStringIndex(text, -1) {
		if isAbbrevBoundary(text, loc[0]) {
			continue
		}

		if s := strings.TrimSpace(text[start:loc[1]]); s != "" {
			sents = append(sents, s)
		}
		start = loc[1]
	}

	if start < len(text) {
		if s := strings.TrimSpace(text[start:]); s != "" {
			sents = append(sents, s)
		}
	}

	return sents
}

// isAbbrevBoundary reports whether the terminal punctuation at pos
// follows a known abbreviation.
func isAbbrevBoundary(text string, pos int) bool {
	wordStart := pos
	for wordStart > 0 {
		r := rune(text[wordStart-1])
		if r == ' ' || r == '\t' {
			break
		}
		wordStart--
	}

	word := strings.ToLower(strings.TrimRight(text[wordStart:pos], "."))
	return abbrev[word]
}

// Tag tokenizes and tags one sentence. The second return value is the
// word-only token list, in order.
func (e *English) Tag(sent string) ([]Unit, []string) {
	tokens := tokenPat.FindAllString(sent, -1)
	if len(tokens) == 0 {
		return nil, nil
	}

	units := make([]Unit, 0, len(tokens))
	var words []string

	for i, tok := range tokens {
		if !wordPat.MatchString(tok) {
			units = append(units, Unit{Surface: tok, Tag: "SYM"})
			continue
		}

		units = append(units, Unit{Surface: tok, Tag: tagWord(tok, i)})
		words = append(words, tok)
	}

	return units, words
}

func tagWord(tok string, idx int) string {
	lower := strings.ToLower(tok)

	if digitPat.MatchString(tok) {
		return "CD"
	}

	if t, ok := closedClass[lower]; ok {
		return t
	}

	if t, ok := verbForms[lower]; ok {
		return t
	}

	switch {
	case len(lower) > 4 && strings.HasSuffix(lower, "ing"):
		return "VBG"
	case len(lower) > 4 && strings.HasSuffix(lower, "ly"):
		return "RB"
	case hasAnySuffix(lower, "ous", "ful", "ive", "able", "ible", "ish", "less", "ical"):
		return "JJ"
	case hasAnySuffix(lower, "tion", "sion", "ment", "ness", "ance", "ence", "ship", "hood", "ism", "ity"):
		if strings.HasSuffix(lower, "s") {
			return "NNS"
		}
		return "NN"
	case len(lower) > 3 && strings.HasSuffix(lower, "ed"):
		return "VBD"
	case hasAnySuffix(lower, "al", "ic"):
		return "JJ"
	}

	first, _ := firstRune(tok)
	if idx > 0 && unicode.IsUpper(first) {
		if plural(lower) {
			return "NNPS"
		}
		return "NNP"
	}

	if plural(lower) {
		return "NNS"
	}

	return "NN"
}

// Lemma returns the base form for nouns and verbs; other classes pass
// through lowercased.
func (e *English) Lemma(word string, class sentence.Class) string {
	w := strings.ToLower(word)

	switch class {
	case sentence.Noun:
		return singularize(w)
	case sentence.Verb:
		return verbLemma(w)
	}

	return w
}

func singularize(w string) string {
	if s, ok := irregularNouns[w]; ok {
		return s
	}

	switch {
	case hasAnySuffix(w, "ss", "us", "is"):
		return w
	case len(w) > 4 && strings.HasSuffix(w, "ies"):
		return w[:len(w)-3] + "y"
	case len(w) > 3 && strings.HasSuffix(w, "ves"):
		return w[:len(w)-3] + "f"
	case hasAnySuffix(w, "ches", "shes", "ses", "xes", "zes"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "s"):
		return w[:len(w)-1]
	}

	return w
}

func verbLemma(w string) string {
	if base, ok := irregularVerbs[w]; ok {
		return base
	}

	switch {
	case len(w) > 4 && strings.HasSuffix(w, "ies"):
		return w[:len(w)-3] + "y"
	case len(w) > 4 && strings.HasSuffix(w, "ied"):
		return w[:len(w)-3] + "y"
	case len(w) > 4 && strings.HasSuffix(w, "ing"):
		return restoreStem(w[:len(w)-3])
	case len(w) > 4 && strings.HasSuffix(w, "eed"):
		return w[:len(w)-1]
	case len(w) > 3 && strings.HasSuffix(w, "ed"):
		return restoreStem(w[:len(w)-2])
	case hasAnySuffix(w, "ches", "shes", "ses", "xes", "zes", "oes"):
		return w[:len(w)-2]
	case len(w) > 2 && strings.HasSuffix(w, "es"):
		return w[:len(w)-1]
	case len(w) > 1 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss"):
		return w[:len(w)-1]
	}

	return w
}

// restoreStem undoes consonant doubling and restores a dropped final "e"
// after stripping -ing/-ed.
func restoreStem(stem string) string {
	n := len(stem)

	if n >= 2 && stem[n-1] == stem[n-2] && !isVowel(stem[n-1]) {
		return stem[:n-1]
	}

	if n == 2 && isVowel(stem[0]) && !isVowel(stem[1]) {
		return stem + "e"
	}

	if n >= 3 && !isVowel(stem[n-3]) && isVowel(stem[n-2]) && !isVowel(stem[n-1]) {
		switch stem[n-1] {
		case 'w', 'x', 'y':
			return stem
		}
		return stem + "e"
	}

	return stem
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func plural(w string) bool {
	if len(w) < 3 || !strings.HasSuffix(w, "s") {
		return false
	}
	return !hasAnySuffix(w, "ss", "us", "is")
}

func hasAnySuffix(w string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

func firstRune(s string) (rune, int) {
	for _, r := range s {
		return r, 1
	}
	return 0, 0
}
