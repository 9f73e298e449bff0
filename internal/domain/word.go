package domain

import "strings"

// WordPair represents a term and its translation.
// Pairs are values: two pairs are equal when both fields match.
type WordPair struct {
	Term        string `yaml:"term"`
	Translation string `yaml:"translation"`
}

// NewWordPair creates a pair from raw fields, trimming surrounding whitespace
func NewWordPair(term, translation string) WordPair {
	return WordPair{
		Term:        strings.TrimSpace(term),
		Translation: strings.TrimSpace(translation),
	}
}

// Valid reports whether both fields are non-empty
func (p WordPair) Valid() bool {
	return p.Term != "" && p.Translation != ""
}

// Matches checks an answer against the translation
func (p WordPair) Matches(answer string) bool {
	return strings.TrimSpace(answer) == p.Translation
}
