package store

import (
	"context"
	"os"

	"github.com/rcliao/string-analyzer/internal/errors"
)

// Stats holds database statistics.
type Stats struct {
	DBPath        string           `json:"db_path" yaml:"db_path"`
	DBSizeBytes   int64            `json:"db_size_bytes" yaml:"db_size_bytes"`
	TotalStrings  int              `json:"total_strings" yaml:"total_strings"`
	Palindromes   int              `json:"palindromes" yaml:"palindromes"`
	AverageLength float64          `json:"average_length" yaml:"average_length"`
	LongestLength int              `json:"longest_length" yaml:"longest_length"`
	WordCounts    []WordCountStats `json:"word_counts" yaml:"word_counts"`
}

// WordCountStats holds the number of strings with a given word count.
type WordCountStats struct {
	WordCount int `json:"word_count" yaml:"word_count"`
	Count     int `json:"count" yaml:"count"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath, WordCounts: []WordCountStats{}}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(is_palindrome), 0),
		       COALESCE(AVG(length), 0.0), COALESCE(MAX(length), 0)
		FROM strings`).Scan(&st.TotalStrings, &st.Palindromes, &st.AverageLength, &st.LongestLength)
	if err != nil {
		return st, errors.Wrap(err, "count strings")
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT word_count, COUNT(*) AS cnt
		FROM strings GROUP BY word_count ORDER BY word_count`)
	if err != nil {
		return st, errors.Wrap(err, "count word counts")
	}
	defer rows.Close()

	for rows.Next() {
		var wc WordCountStats
		if err := rows.Scan(&wc.WordCount, &wc.Count); err != nil {
			return st, errors.Wrap(err, "scan word counts")
		}
		st.WordCounts = append(st.WordCounts, wc)
	}
	return st, rows.Err()
}
