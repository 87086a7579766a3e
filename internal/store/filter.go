package store

import (
	"unicode/utf8"

	"github.com/rcliao/string-analyzer/internal/errors"
	"github.com/rcliao/string-analyzer/internal/model"
)

// ValidateFilters rejects a contains_character that is not exactly one character.
func ValidateFilters(f model.Filters) error {
	if f.ContainsCharacter != nil && utf8.RuneCountInString(*f.ContainsCharacter) != 1 {
		return errors.NewInvalidArgumentError("contains_character must be a single character")
	}
	return nil
}

// filterClause builds the AND-combined WHERE terms for f. Omitted filters add nothing.
func filterClause(f model.Filters) ([]string, []interface{}) {
	var where []string
	var args []interface{}

	if f.IsPalindrome != nil {
		where = append(where, "is_palindrome = ?")
		args = append(args, *f.IsPalindrome)
	}
	if f.MinLength != nil {
		where = append(where, "length >= ?")
		args = append(args, *f.MinLength)
	}
	if f.MaxLength != nil {
		where = append(where, "length <= ?")
		args = append(args, *f.MaxLength)
	}
	if f.WordCount != nil {
		where = append(where, "word_count = ?")
		args = append(args, *f.WordCount)
	}
	// instr is an exact, case-sensitive substring test; LIKE would fold ASCII case.
	if f.ContainsCharacter != nil {
		where = append(where, "instr(value, ?) > 0")
		args = append(args, *f.ContainsCharacter)
	}

	return where, args
}
