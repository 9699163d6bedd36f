package textutil

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"overlap/internal/sets"
)

// wordSplitPattern matches runs of characters outside [0-9A-Za-z_].
var wordSplitPattern = regexp.MustCompile(`\W+`)

// TrimmedLines returns the set of non-empty lines in text, each trimmed of
// leading and trailing Unicode whitespace as defined by strings.TrimSpace.
// Control characters that are not whitespace, such as \x01, are kept.
func TrimmedLines(text string) sets.Set[string] {
	result := make(sets.Set[string])
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		result[line] = struct{}{}
	}
	return result
}

// LowercaseWords returns the words of text in order of appearance, lowercased.
// A word is a maximal run of ASCII letters, digits, and underscores; duplicates
// are kept because shingling depends on adjacency.
func LowercaseWords(text string) []string {
	// Caser values carry state, so each call gets its own.
	lowered := cases.Lower(language.Und).String(text)
	raw := wordSplitPattern.Split(lowered, -1)
	words := make([]string, 0, len(raw))
	for _, token := range raw {
		if token == "" {
			continue
		}
		words = append(words, token)
	}
	return words
}

// Shingle returns the set of k-shingles of words. A k-shingle is the
// concatenation, with no separator, of k adjacent words. Fewer than k words
// yields the empty set.
func Shingle(words []string, k int) (sets.Set[string], error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidShingleLength, k)
	}
	result := make(sets.Set[string])
	for j := 0; j+k <= len(words); j++ {
		result[strings.Join(words[j:j+k], "")] = struct{}{}
	}
	return result, nil
}
