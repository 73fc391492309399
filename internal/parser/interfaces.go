package parser

import (
	"log/slog"

	"github.com/qa-insights/go-qa-analytics/internal/model"
	"github.com/qa-insights/go-qa-analytics/internal/parser/filtering"
)

// ParserConfig defines the lean configuration required by a parser. This
// consumer-defined interface decouples parsers from the main report
// configuration.
type ParserConfig interface {
	ClassFilters() filtering.IFilter
	Logger() *slog.Logger
}

// ResultParser defines the contract for all test-result report parsers.
// Parse produces exactly one TestSuite per document, or an error; a failed
// document contributes nothing.
type ResultParser interface {
	Name() string
	SupportsFile(filePath string) bool
	Parse(filePath string, config ParserConfig) (*model.TestSuite, error)
}
