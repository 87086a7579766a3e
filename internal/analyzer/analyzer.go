// Package analyzer computes the descriptive properties of a string.
package analyzer

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rcliao/string-analyzer/internal/model"
)

// Analyze returns the properties of value. It is pure and never fails.
//
// Length, WordCount and ContentHash are taken from the original value;
// palindrome, uniqueness and frequency are computed over its lowercased form.
func Analyze(value string) model.Properties {
	folded := []rune(fold(value))

	freq := make(map[string]int, len(folded))
	for _, r := range folded {
		freq[string(r)]++
	}

	return model.Properties{
		Length:             len([]rune(value)),
		IsPalindrome:       isPalindrome(folded),
		UniqueCharacters:   len(freq),
		WordCount:          WordCount(value),
		ContentHash:        Hash(value),
		CharacterFrequency: freq,
	}
}

// Hash returns the hex SHA-256 digest of value's bytes.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// WordCount counts maximal runs of non-whitespace runes.
func WordCount(value string) int {
	return len(strings.FieldsFunc(value, isSpace))
}

// fold lowercases with the language-neutral Unicode mapping.
// A Caser keeps state, so one is built per call.
func fold(value string) string {
	return cases.Lower(language.Und).String(value)
}

func isPalindrome(runes []rune) bool {
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// isSpace also treats the ASCII information separators (U+001C..U+001F)
// as word boundaries.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
