package store

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rcliao/string-analyzer/internal/errors"
	"github.com/rcliao/string-analyzer/internal/model"
)

var (
	longerThanRegex       = regexp.MustCompile(`longer than (\p{Nd}+) characters`)
	containingLetterRegex = regexp.MustCompile(`containing the letter ([\p{L}\p{N}_])`)
)

// ParseNaturalLanguage maps a free-text query onto filters using fixed rules.
// Every matching rule applies:
//
//	"single word"                  -> word_count = 1
//	"palindromic"                  -> is_palindrome = true
//	"longer than N characters"     -> min_length = N+1
//	"containing the letter X"      -> contains_character = X
//
// Matching is case-insensitive. A query no rule matches is an invalid argument.
func ParseNaturalLanguage(text string) (model.Filters, error) {
	var f model.Filters
	q := cases.Lower(language.Und).String(text)

	if strings.Contains(q, "single word") {
		one := 1
		f.WordCount = &one
	}
	if strings.Contains(q, "palindromic") {
		yes := true
		f.IsPalindrome = &yes
	}
	if m := longerThanRegex.FindStringSubmatch(q); m != nil {
		n, err := strconv.Atoi(asciiDigits(m[1]))
		if err != nil || n == math.MaxInt {
			return model.Filters{}, errors.NewInvalidArgumentError("length %s is out of range", m[1])
		}
		minLength := n + 1
		f.MinLength = &minLength
	}
	if m := containingLetterRegex.FindStringSubmatch(q); m != nil {
		c := m[1]
		f.ContainsCharacter = &c
	}

	if f.Empty() {
		return model.Filters{}, errors.NewInvalidArgumentError("unable to parse natural language query")
	}
	return f, nil
}

// asciiDigits rewrites decimal digits from any script as ASCII. Unicode
// assigns every Nd digit in contiguous runs of ten ordered 0 through 9, so a
// digit's value is its offset from the start of its run, modulo ten.
func asciiDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		start := r
		for unicode.IsDigit(start - 1) {
			start--
		}
		b.WriteByte(byte('0' + (r-start)%10))
	}
	return b.String()
}
