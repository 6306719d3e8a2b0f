package taxonomy

import "strings"

// Fixed scoring weights. Semantic similarity, when available, dominates
// a single keyword hit but not a pile of them.
const (
	WeightKeyword  = 2.0
	WeightPhrase   = 4.0
	WeightSemantic = 6.0

	PostWeightPhysical      = 1.20
	PostWeightActive        = 1.10
	PostWeightCyberNoSignal = 0.20

	// DefaultMinScore is the floor below which a resolver returns null
	// rather than guessing.
	DefaultMinScore = 2.0
)

// tokenize lowercases and splits on whitespace, trimming punctuation
// from token edges while keeping inner hyphens ("k-12" stays whole).
func tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, field := range strings.Fields(strings.ToLower(text)) {
		token := strings.Trim(field, ".,;:!?()[]{}\"'“”‘’")
		if token != "" {
			tokens[token] = true
		}
	}
	return tokens
}

// keywordScore counts vocabulary keywords present in the text. Single
// words match against the token set; multiword keywords match by
// substring.
func keywordScore(lowerText string, tokens map[string]bool, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.ContainsRune(kw, ' ') {
			if strings.Contains(lowerText, kw) {
				hits++
			}
			continue
		}
		if tokens[kw] {
			hits++
		}
	}
	return hits
}

func phraseScore(lowerText string, phrases []string) int {
	hits := 0
	for _, phrase := range phrases {
		if strings.Contains(lowerText, phrase) {
			hits++
		}
	}
	return hits
}
