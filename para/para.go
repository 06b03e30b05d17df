// Package para segments raw document text into paragraphs and strips
// quoted email content before parsing.
package para

import (
	"regexp"
	"strings"
)

var (
	patForward = regexp.MustCompile(`\n-+ Forwarded message -+\n`)
	patReplied = regexp.MustCompile(`\nOn.*\d+.*\n?wrote:\n+>`)
	patUnsub   = regexp.MustCompile(`\n-+\nTo unsubscribe,.*\nFor additional commands,.*`)
)

// Split segments raw text into paragraphs separated by blank lines.
// Lines are trimmed; empty paragraphs are not emitted.
func Split(text string) []string {
	var grafs []string
	var graf []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if len(line) < 1 {
			if len(graf) > 0 {
				grafs = append(grafs, strings.Join(graf, "\n"))
				graf = nil
			}
			continue
		}

		graf = append(graf, line)
	}

	if len(graf) > 0 {
		grafs = append(grafs, strings.Join(graf, "\n"))
	}

	return grafs
}

// FilterQuotes removes quoted text from a message and returns the novel
// paragraphs. With isEmail, forwarded blocks, reply quotes and trailing
// unsubscribe notices are cut first; in any case lines starting with ">"
// are blanked so they act as paragraph boundaries.
func FilterQuotes(text string, isEmail bool) []string {
	if isEmail {
		text = printable(text)

		if m := patForward.Split(text, 2); len(m) > 1 {
			text = m[0]
		}

		if m := patReplied.Split(text, 2); len(m) > 1 {
			text = m[0]
		}

		if m := patUnsub.Split(text, 2); len(m) > 0 {
			text = m[0]
		}
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, ">") {
			lines = append(lines, "")
		} else {
			lines = append(lines, line)
		}
	}

	return Split(strings.Join(lines, "\n"))
}

// printable drops bytes outside the printable ASCII range plus common
// whitespace, mirroring the email pre-filter of upstream taggers that
// choke on control characters.
func printable(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if r == '\n' || r == '\t' || r == '\r' || (r >= 0x20 && r < 0x7f) {
			b.WriteRune(r)
		}
	}

	return b.String()
}
