// Package model defines the core string record data types.
package model

import "time"

// Properties are the descriptive values computed for a string.
type Properties struct {
	Length             int            `json:"length" yaml:"length"`
	IsPalindrome       bool           `json:"is_palindrome" yaml:"is_palindrome"`
	UniqueCharacters   int            `json:"unique_characters" yaml:"unique_characters"`
	WordCount          int            `json:"word_count" yaml:"word_count"`
	ContentHash        string         `json:"sha256_hash" yaml:"sha256_hash"`
	CharacterFrequency map[string]int `json:"character_frequency_map" yaml:"character_frequency_map"`
}

// StringRecord represents a stored string and its analysis.
// ID always equals Properties.ContentHash.
type StringRecord struct {
	ID         string     `json:"id" yaml:"id"`
	Value      string     `json:"value" yaml:"value"`
	Properties Properties `json:"properties" yaml:"properties"`
	CreatedAt  time.Time  `json:"created_at" yaml:"created_at"`
}

// Filters is a conjunctive set of optional listing predicates. A nil field is omitted.
type Filters struct {
	IsPalindrome      *bool   `json:"is_palindrome,omitempty" yaml:"is_palindrome,omitempty"`
	MinLength         *int    `json:"min_length,omitempty" yaml:"min_length,omitempty"`
	MaxLength         *int    `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	WordCount         *int    `json:"word_count,omitempty" yaml:"word_count,omitempty"`
	ContainsCharacter *string `json:"contains_character,omitempty" yaml:"contains_character,omitempty"`
}

// Empty reports whether no predicate is set.
func (f Filters) Empty() bool {
	return f.IsPalindrome == nil && f.MinLength == nil && f.MaxLength == nil &&
		f.WordCount == nil && f.ContainsCharacter == nil
}
