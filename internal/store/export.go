package store

import (
	"context"

	"github.com/rcliao/string-analyzer/internal/errors"
	"github.com/rcliao/string-analyzer/internal/model"
)

// ImportResult counts the outcome of an import.
type ImportResult struct {
	Imported int `json:"imported" yaml:"imported"`
	Skipped  int `json:"skipped" yaml:"skipped"`
}

// ExportAll returns every stored record in listing order.
func (s *SQLiteStore) ExportAll(ctx context.Context) ([]model.StringRecord, error) {
	return s.query(ctx, model.Filters{})
}

// Import stores each value. Values already stored are skipped; properties and
// timestamps are always recomputed rather than trusted from the input.
func (s *SQLiteStore) Import(ctx context.Context, values []string) (*ImportResult, error) {
	res := &ImportResult{}
	for _, v := range values {
		_, err := s.Insert(ctx, v)
		if errors.IsConflictError(err) {
			res.Skipped++
			continue
		}
		if err != nil {
			return res, err
		}
		res.Imported++
	}
	s.logger.Infow("Import finished", "imported", res.Imported, "skipped", res.Skipped)
	return res, nil
}
