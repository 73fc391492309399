package reportconfig

import (
	"fmt"
	"log/slog"

	"github.com/qa-insights/go-qa-analytics/internal/logging"
	"github.com/qa-insights/go-qa-analytics/internal/parser/filtering"
)

// IReportConfiguration defines the configuration for one analyzer run.
type IReportConfiguration interface {
	ResultsPath() string
	TargetDirectory() string
	ReportTypes() []string
	WorkerCount() int
	SlowestClassCount() int
	Title() string
	VerbosityLevel() logging.VerbosityLevel
	ClassFilters() filtering.IFilter
	Logger() *slog.Logger
}

// ReportConfiguration is the concrete implementation of IReportConfiguration.
// It also satisfies parser.ParserConfig, so it can be handed to parsers
// directly.
type ReportConfiguration struct {
	resultsPath  string
	targetDir    string
	reportTypes  []string
	workers      int
	slowest      int
	title        string
	verbosity    logging.VerbosityLevel
	classFilters filtering.IFilter
	logger       *slog.Logger
}

func (rc *ReportConfiguration) ResultsPath() string                    { return rc.resultsPath }
func (rc *ReportConfiguration) TargetDirectory() string                { return rc.targetDir }
func (rc *ReportConfiguration) ReportTypes() []string                  { return rc.reportTypes }
func (rc *ReportConfiguration) WorkerCount() int                       { return rc.workers }
func (rc *ReportConfiguration) SlowestClassCount() int                 { return rc.slowest }
func (rc *ReportConfiguration) Title() string                          { return rc.title }
func (rc *ReportConfiguration) VerbosityLevel() logging.VerbosityLevel { return rc.verbosity }
func (rc *ReportConfiguration) ClassFilters() filtering.IFilter        { return rc.classFilters }
func (rc *ReportConfiguration) Logger() *slog.Logger                   { return rc.logger }

// NewReportConfiguration validates and assembles a run configuration.
func NewReportConfiguration(
	resultsPath string,
	targetDir string,
	reportTypes []string,
	workers int,
	slowest int,
	title string,
	classFilterRules []string,
	verbosity logging.VerbosityLevel,
	logger *slog.Logger,
) (*ReportConfiguration, error) {
	if resultsPath == "" {
		return nil, fmt.Errorf("results path is required")
	}
	if len(reportTypes) == 0 {
		reportTypes = []string{"Html"}
	}
	if workers <= 0 {
		workers = 10
	}
	if slowest <= 0 {
		slowest = 10
	}
	if title == "" {
		title = "Test Results"
	}

	filters, err := filtering.NewDefaultFilter(classFilterRules)
	if err != nil {
		return nil, err
	}

	return &ReportConfiguration{
		resultsPath:  resultsPath,
		targetDir:    targetDir,
		reportTypes:  reportTypes,
		workers:      workers,
		slowest:      slowest,
		title:        title,
		verbosity:    verbosity,
		classFilters: filters,
		logger:       logger,
	}, nil
}
