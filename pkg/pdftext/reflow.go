package pdftext

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Recommendation sections in SAFE/IST-formatted reports arrive as
// bullet fragments with hard wraps. ReflowRecommendations rebuilds them
// into whole-sentence blocks so the extractor sees one option per line.

var (
	bulletPrefixRe = regexp.MustCompile(`^(?:[-•*▪‣]|\d+\.)\s*`)
	innerSpacesRe  = regexp.MustCompile(`[ \t]+`)
)

// wrapContinues reports whether a line ending in prev reads as a hard
// wrap rather than a sentence boundary.
func wrapContinues(prev string) bool {
	if prev == "" {
		return false
	}
	c := prev[len(prev)-1]
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == ',' || c == ';' || c == ':' || c == ')':
		return true
	}
	return false
}

// ReflowRecommendations normalizes text to NFKC, strips carriage
// returns, then reassembles bullet and wrapped lines into one block per
// recommendation. Blocks are returned newline-separated.
func ReflowRecommendations(text string) string {
	text = norm.NFKC.String(text)
	text = strings.ReplaceAll(text, "\r", "")

	var blocks []string
	var current string

	flush := func() {
		if current == "" {
			return
		}
		blocks = append(blocks, innerSpacesRe.ReplaceAllString(current, " "))
		current = ""
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		// Blank lines separate blocks.
		if trimmed == "" {
			flush()
			continue
		}

		// A bullet or "N." enumerator starts a new block, prefix dropped.
		if loc := bulletPrefixRe.FindStringIndex(trimmed); loc != nil && loc[1] > 0 {
			flush()
			current = trimmed[loc[1]:]
			continue
		}

		// Wrap continuation: the previous line broke mid-sentence.
		if current != "" && wrapContinues(current) {
			current = current + " " + trimmed
			continue
		}

		flush()
		current = trimmed
	}
	flush()

	return strings.Join(blocks, "\n")
}

// ReflowPages applies recommendation reflow to every page in place.
func ReflowPages(pages []Page) []Page {
	out := make([]Page, len(pages))
	for i, p := range pages {
		out[i] = Page{PageNumber: p.PageNumber, Text: ReflowRecommendations(p.Text)}
	}
	return out
}
