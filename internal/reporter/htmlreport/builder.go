// Package htmlreport generates a self-contained static HTML report with
// result-distribution charts, suite tables and failure listings.
package htmlreport

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/qa-insights/go-qa-analytics/internal/analyzer"
	"github.com/qa-insights/go-qa-analytics/internal/model"
	"github.com/qa-insights/go-qa-analytics/internal/reporting"
)

const reportFileName = "index.html"

// HtmlReportBuilder is responsible for generating HTML reports.
type HtmlReportBuilder struct {
	outputDir string
	reportCtx reporting.IReportContext

	// now is swappable so tests get a stable GeneratedAt line.
	now func() time.Time
}

// NewHtmlReportBuilder creates a new HtmlReportBuilder.
func NewHtmlReportBuilder(outputDir string, reportCtx reporting.IReportContext) *HtmlReportBuilder {
	return &HtmlReportBuilder{
		outputDir: outputDir,
		reportCtx: reportCtx,
		now:       time.Now,
	}
}

// ReportType returns the type of report this builder creates.
func (b *HtmlReportBuilder) ReportType() string {
	return "Html"
}

// CreateReport renders index.html from the aggregated results.
func (b *HtmlReportBuilder) CreateReport(analysis *analyzer.ResultAnalyzer) error {
	if err := os.MkdirAll(b.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", b.outputDir, err)
	}

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	data := b.buildViewModel(analysis)

	f, err := os.Create(filepath.Join(b.outputDir, reportFileName))
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}
	return nil
}

func (b *HtmlReportBuilder) buildViewModel(analysis *analyzer.ResultAnalyzer) HTMLReportData {
	data := HTMLReportData{
		Title:       b.reportCtx.ReportConfiguration().Title(),
		GeneratedAt: b.now().Format(time.RFC1123),
	}

	var failedCases, skippedCases []model.TestCase
	for _, class := range analysis.Classes() {
		data.Passed += class.Passed
		data.Failed += class.Failed
		data.Errors += class.Errors
		data.Skipped += class.Skipped
		failedCases = append(failedCases, class.FailedTestCases...)
		failedCases = append(failedCases, class.ErrorTestCases...)
		skippedCases = append(skippedCases, class.SkippedTestCases...)
	}
	for _, c := range ungroupedCases(analysis) {
		switch c.Result {
		case model.ResultFailed:
			data.Failed++
			failedCases = append(failedCases, c)
		case model.ResultError:
			data.Errors++
			failedCases = append(failedCases, c)
		case model.ResultSkipped:
			data.Skipped++
			skippedCases = append(skippedCases, c)
		default:
			data.Passed++
		}
	}

	data.TotalSuites = len(analysis.Suites())
	data.TotalClasses = len(analysis.Classes())
	data.TotalCases = analysis.Len()
	data.OverallPie = buildPie(data.Passed, data.Failed, data.Errors, data.Skipped)

	for _, suite := range analysis.Suites() {
		vm := SuiteViewModel{
			Name:          suite.Name,
			Tests:         suite.Tests,
			Passed:        suite.Passed(),
			Failures:      suite.Failures,
			Errors:        suite.Errors,
			Skipped:       suite.Skipped,
			ExecutionTime: fmt.Sprintf("%.2f", suite.ExecutionTime),
			Timestamp:     suite.Timestamp,
		}
		vm.Pie = buildPie(vm.Passed, vm.Failures, vm.Errors, vm.Skipped)
		data.Suites = append(data.Suites, vm)
	}

	for _, class := range analysis.SlowestClasses(b.reportCtx.Settings().SlowestClassCount) {
		data.Slowest = append(data.Slowest, ClassViewModel{
			Name:          class.Name,
			Cases:         len(class.TestCases),
			Failed:        class.Failed,
			ExecutionTime: fmt.Sprintf("%.2f", class.ExecutionTime),
		})
	}

	data.Failures = buildCaseViewModels(failedCases, func(c model.TestCase) *string {
		if c.FailureReason != nil {
			return c.FailureReason
		}
		return c.ErrorReason
	})
	data.Skips = buildCaseViewModels(skippedCases, func(c model.TestCase) *string {
		return c.SkippedReason
	})

	return data
}

func ungroupedCases(analysis *analyzer.ResultAnalyzer) []model.TestCase {
	var cases []model.TestCase
	for _, suite := range analysis.Suites() {
		cases = append(cases, suite.TestCases...)
	}
	return cases
}
