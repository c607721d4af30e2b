package scripture

import "strings"

// Tokenize splits verse text on single ASCII spaces into tap targets,
// preserving reading order. Empty input yields an empty slice and runs of
// spaces never produce empty tokens.
func Tokenize(text string) []string {
	parts := strings.Split(text, " ")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		tokens = append(tokens, p)
	}
	return tokens
}

// WordIndex returns the position of the first occurrence of word, or -1.
func WordIndex(tokens []string, word string) int {
	for i, t := range tokens {
		if t == word {
			return i
		}
	}
	return -1
}

// ResolveWordVariant returns the alternate reading registered for word.
func ResolveWordVariant(rec VerseRecord, word string) (WordVariant, bool) {
	v, ok := rec.WordVariants[word]
	return v, ok
}
