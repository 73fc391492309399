// Package textsummary renders the aggregated results as a plain-text
// summary file.
package textsummary

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/qa-insights/go-qa-analytics/internal/analyzer"
	"github.com/qa-insights/go-qa-analytics/internal/reporting"
)

const summaryFileName = "Summary.txt"

// TextReportBuilder writes Summary.txt into the output directory.
type TextReportBuilder struct {
	outputDir string
	reportCtx reporting.IReportContext
}

// NewTextReportBuilder creates a new TextReportBuilder.
func NewTextReportBuilder(outputDir string, reportCtx reporting.IReportContext) *TextReportBuilder {
	return &TextReportBuilder{outputDir: outputDir, reportCtx: reportCtx}
}

// ReportType returns the type of report this builder creates.
func (b *TextReportBuilder) ReportType() string {
	return "TextSummary"
}

// CreateReport renders the suite table and slowest-classes table.
func (b *TextReportBuilder) CreateReport(analysis *analyzer.ResultAnalyzer) error {
	if err := os.MkdirAll(b.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", b.outputDir, err)
	}

	f, err := os.Create(filepath.Join(b.outputDir, summaryFileName))
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	title := b.reportCtx.ReportConfiguration().Title()
	fmt.Fprintf(f, "%s\n\n", title)

	suiteTable := table.NewWriter()
	suiteTable.SetOutputMirror(f)
	suiteTable.SetTitle("Test Suites")
	suiteTable.AppendHeader(table.Row{"Suite", "Tests", "Passed", "Failed", "Errors", "Skipped", "Time (s)"})
	suiteTable.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Tests", Align: text.AlignRight},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
		{Name: "Errors", Align: text.AlignRight},
		{Name: "Skipped", Align: text.AlignRight},
		{Name: "Time (s)", Align: text.AlignRight},
	})

	var totalTests, totalPassed, totalFailed, totalErrors, totalSkipped int
	for _, suite := range analysis.Suites() {
		suiteTable.AppendRow(table.Row{
			suite.Name,
			suite.Tests,
			suite.Passed(),
			suite.Failures,
			suite.Errors,
			suite.Skipped,
			fmt.Sprintf("%.2f", suite.ExecutionTime),
		})
		totalTests += suite.Tests
		totalPassed += suite.Passed()
		totalFailed += suite.Failures
		totalErrors += suite.Errors
		totalSkipped += suite.Skipped
	}
	suiteTable.AppendFooter(table.Row{"Total", totalTests, totalPassed, totalFailed, totalErrors, totalSkipped, ""})
	suiteTable.Render()

	slowest := analysis.SlowestClasses(b.reportCtx.Settings().SlowestClassCount)
	if len(slowest) > 0 {
		fmt.Fprintln(f)
		classTable := table.NewWriter()
		classTable.SetOutputMirror(f)
		classTable.SetTitle("Slowest Test Classes")
		classTable.AppendHeader(table.Row{"Class", "Cases", "Failed", "Time (s)"})
		classTable.SetColumnConfigs([]table.ColumnConfig{
			{Name: "Cases", Align: text.AlignRight},
			{Name: "Failed", Align: text.AlignRight},
			{Name: "Time (s)", Align: text.AlignRight},
		})
		for _, class := range slowest {
			classTable.AppendRow(table.Row{
				class.Name,
				len(class.TestCases),
				class.Failed,
				fmt.Sprintf("%.2f", class.ExecutionTime),
			})
		}
		classTable.Render()
	}

	return nil
}
