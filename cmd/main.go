package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/qa-insights/go-qa-analytics/internal/analyzer"
	"github.com/qa-insights/go-qa-analytics/internal/filesystem"
	"github.com/qa-insights/go-qa-analytics/internal/logging"
	"github.com/qa-insights/go-qa-analytics/internal/processor"
	"github.com/qa-insights/go-qa-analytics/internal/reportconfig"
	"github.com/qa-insights/go-qa-analytics/internal/reporter"
	"github.com/qa-insights/go-qa-analytics/internal/reporter/htmlreport"
	"github.com/qa-insights/go-qa-analytics/internal/reporter/textsummary"
	"github.com/qa-insights/go-qa-analytics/internal/reporting"
	"github.com/qa-insights/go-qa-analytics/internal/settings"

	_ "github.com/qa-insights/go-qa-analytics/internal/parser/junit" // register the JUnit parser
)

// supportedReportTypes defines the available report formats
var supportedReportTypes = map[string]bool{
	"TextSummary": true,
	"Html":        true,
}

// validateReportTypes checks if all requested report types are supported
func validateReportTypes(types []string) error {
	for _, t := range types {
		trimmedType := strings.TrimSpace(t)
		if !supportedReportTypes[trimmedType] {
			return fmt.Errorf("unsupported report type: %s", trimmedType)
		}
	}
	return nil
}

func main() {
	start := time.Now()

	resultsPath := flag.String("results", "", "Path to a test-result XML file or a directory containing them")
	outputDir := flag.String("output", "test-results-report", "Output directory for reports")
	reportTypesStr := flag.String("reporttypes", "Html", "Report types to generate (comma-separated: TextSummary,Html)")
	workers := flag.Int("workers", 0, "Number of ingestion workers (default from settings)")
	slowest := flag.Int("slowest", 0, "Number of slowest test classes to report (default from settings)")
	title := flag.String("title", "", "Optional report title. Default: 'Test Results'")
	classFiltersStr := flag.String("classfilters", "", "Class name filters (semicolon-separated, e.g. \"+Test*;-TestFlaky*\")")
	settingsPath := flag.String("settings", "", "Optional YAML settings file")
	verbosityStr := flag.String("verbosity", "Info", "Logging verbosity level (Verbose, Info, Warning, Error, Off)")

	flag.Parse()

	if *resultsPath == "" {
		fmt.Println("Usage: qa-analytics -results <file-or-dir> [-output <dir>] ...")
		fmt.Println("\nReport types:")
		for rt := range supportedReportTypes {
			fmt.Printf("  %s\n", rt)
		}
		fmt.Println("\nVerbosity levels: Verbose, Info, Warning, Error, Off")
		os.Exit(1)
	}

	verbosity, err := logging.ParseVerbosity(*verbosityStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, verbosity)

	currentSettings := settings.NewSettings()
	if *settingsPath != "" {
		currentSettings, err = settings.LoadFile(*settingsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	requestedTypes := strings.Split(*reportTypesStr, ",")
	if err := validateReportTypes(requestedTypes); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Println("\nSupported report types:")
		for rt := range supportedReportTypes {
			fmt.Printf("  %s\n", rt)
		}
		os.Exit(1)
	}

	classFilterRules := currentSettings.ClassFilters
	if *classFiltersStr != "" {
		classFilterRules = strings.Split(*classFiltersStr, ";")
	}

	workerCount := currentSettings.WorkerCount
	if *workers > 0 {
		workerCount = *workers
	}
	slowestCount := currentSettings.SlowestClassCount
	if *slowest > 0 {
		slowestCount = *slowest
	}
	actualTitle := currentSettings.ReportTitle
	if *title != "" {
		actualTitle = *title
	}

	reportConfig, err := reportconfig.NewReportConfiguration(
		*resultsPath,
		*outputDir,
		requestedTypes,
		workerCount,
		slowestCount,
		actualTitle,
		classFilterRules,
		verbosity,
		logger,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reportCtx := reporting.NewReportContext(reportConfig, currentSettings)

	logger.Info("ingesting test results", "path", *resultsPath, "workers", workerCount)
	proc := processor.New(*resultsPath, filesystem.DefaultFS{}, reportConfig, logger)
	suites := proc.Run(workerCount)
	if len(suites) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no test-result files could be processed under %s\n", *resultsPath)
		os.Exit(1)
	}
	logger.Info("ingestion complete", "suites", len(suites))

	analysis := analyzer.NewResultAnalyzer(suites)

	builders := map[string]reporter.ReportBuilder{
		"TextSummary": textsummary.NewTextReportBuilder(*outputDir, reportCtx),
		"Html":        htmlreport.NewHtmlReportBuilder(*outputDir, reportCtx),
	}

	for _, reportType := range requestedTypes {
		trimmedType := strings.TrimSpace(reportType)
		builder := builders[trimmedType]
		logger.Info("generating report", "type", trimmedType, "output", *outputDir)
		if err := builder.CreateReport(analysis); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate %s report: %v\n", trimmedType, err)
		}
	}

	fmt.Printf("\nReport generation completed in %.2f seconds\n", time.Since(start).Seconds())
}
