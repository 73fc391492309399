package reporter

import "github.com/qa-insights/go-qa-analytics/internal/analyzer"

// ReportBuilder is the contract for all report generators. Builders consume
// the read-only aggregated model; they never mutate it.
type ReportBuilder interface {
	// ReportType returns the name used to select this builder (e.g. "Html").
	ReportType() string
	// CreateReport renders the analysis into the builder's output target.
	CreateReport(analysis *analyzer.ResultAnalyzer) error
}
