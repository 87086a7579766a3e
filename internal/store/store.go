// Package store provides the string record storage interface and SQLite implementation.
package store

import (
	"context"

	"github.com/rcliao/string-analyzer/internal/model"
)

// ListResult holds the records matching a filter set and the filters applied.
type ListResult struct {
	Records []model.StringRecord `json:"data" yaml:"data"`
	Count   int                  `json:"count" yaml:"count"`
	Filters model.Filters        `json:"filters_applied" yaml:"filters_applied"`
}

// InterpretedQuery echoes a natural-language query and the filters parsed from it.
type InterpretedQuery struct {
	Original      string        `json:"original" yaml:"original"`
	ParsedFilters model.Filters `json:"parsed_filters" yaml:"parsed_filters"`
}

// NaturalLanguageResult holds the records matching a natural-language query.
type NaturalLanguageResult struct {
	Records []model.StringRecord `json:"data" yaml:"data"`
	Count   int                  `json:"count" yaml:"count"`
	Query   InterpretedQuery     `json:"interpreted_query" yaml:"interpreted_query"`
}

// Store defines the string record storage interface.
type Store interface {
	// Insert analyzes value and stores it. Fails with ErrConflict if the
	// content hash is already stored.
	Insert(ctx context.Context, value string) (*model.StringRecord, error)

	// GetByValue retrieves the record whose value matches exactly.
	GetByValue(ctx context.Context, value string) (*model.StringRecord, error)

	// DeleteByValue permanently removes the record whose value matches exactly.
	DeleteByValue(ctx context.Context, value string) error

	// List returns every record matching all supplied filters.
	List(ctx context.Context, f model.Filters) (*ListResult, error)

	// ListByNaturalLanguage parses text into filters and lists the matches.
	ListByNaturalLanguage(ctx context.Context, text string) (*NaturalLanguageResult, error)

	// Close closes the store.
	Close() error
}
