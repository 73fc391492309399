package htmlreport

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/qa-insights/go-qa-analytics/internal/analyzer"
	"github.com/qa-insights/go-qa-analytics/internal/logging"
	"github.com/qa-insights/go-qa-analytics/internal/model"
	"github.com/qa-insights/go-qa-analytics/internal/reportconfig"
	"github.com/qa-insights/go-qa-analytics/internal/reporting"
	"github.com/qa-insights/go-qa-analytics/internal/settings"
)

func strPtr(s string) *string { return &s }

func testContext(t *testing.T, title string) reporting.IReportContext {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg, err := reportconfig.NewReportConfiguration(
		"results", "out", []string{"Html"}, 2, 10, title, nil, logging.Info, logger)
	require.NoError(t, err)
	return reporting.NewReportContext(cfg, settings.NewSettings())
}

func sampleAnalysis() *analyzer.ResultAnalyzer {
	suites := []model.TestSuite{
		{
			Name:          "suite-one",
			Tests:         3,
			Failures:      1,
			ExecutionTime: 4.5,
			TestClasses: []model.TestClass{
				model.NewTestClass("TestLogin", []model.TestCase{
					{Name: "test_ok", Result: model.ResultPassed, ExecutionTime: 1.0},
					{Name: "test_bad", Result: model.ResultFailed, ExecutionTime: 2.0, FailureReason: strPtr("AssertionError: x")},
				}),
				model.NewTestClass("TestLogout", []model.TestCase{
					{Name: "test_skip", Result: model.ResultSkipped, SkippedReason: strPtr("requires linux")},
				}),
			},
		},
		{
			Name:      "suite-two",
			Tests:     1,
			TestCases: []model.TestCase{{Name: "orphan", Result: model.ResultPassed}},
		},
	}
	return analyzer.NewResultAnalyzer(suites)
}

// findByID walks the parsed HTML tree looking for an element with the id.
func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == "id" && attr.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func countRows(n *html.Node) int {
	count := 0
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "tr" {
			count++
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return count
}

func TestCreateReportWritesWellFormedHTML(t *testing.T) {
	outputDir := t.TempDir()
	builder := NewHtmlReportBuilder(outputDir, testContext(t, "Nightly Results"))
	builder.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	require.NoError(t, builder.CreateReport(sampleAnalysis()))

	raw, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	require.NoError(t, err)
	content := string(raw)
	assert.Contains(t, content, "Nightly Results")
	assert.Contains(t, content, "Sat, 01 Jun 2024 12:00:00 UTC")

	doc, err := html.Parse(strings.NewReader(content))
	require.NoError(t, err)

	suitesTable := findByID(doc, "suites")
	require.NotNil(t, suitesTable, "suite table missing")
	assert.Equal(t, 3, countRows(suitesTable), "header plus one row per suite")

	slowestTable := findByID(doc, "slowest")
	require.NotNil(t, slowestTable, "slowest-classes table missing")
	assert.Equal(t, 3, countRows(slowestTable))

	failuresTable := findByID(doc, "failures")
	require.NotNil(t, failuresTable)
	assert.Equal(t, 2, countRows(failuresTable))

	skipsTable := findByID(doc, "skips")
	require.NotNil(t, skipsTable)
	assert.Equal(t, 2, countRows(skipsTable))

	assert.NotNil(t, findByID(doc, "overall-pie"), "overall pie chart missing")
}

func TestCreateReportEscapesReasons(t *testing.T) {
	outputDir := t.TempDir()
	builder := NewHtmlReportBuilder(outputDir, testContext(t, "Escaping"))

	suites := []model.TestSuite{{
		Name:  "s",
		Tests: 1,
		TestClasses: []model.TestClass{
			model.NewTestClass("C", []model.TestCase{
				{Name: "t", Result: model.ResultFailed, FailureReason: strPtr(`<script>alert("x")</script>`)},
			}),
		},
	}}
	require.NoError(t, builder.CreateReport(analyzer.NewResultAnalyzer(suites)))

	raw, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `<script>alert`)
}

func TestCreateReportEmptyAnalysis(t *testing.T) {
	outputDir := t.TempDir()
	builder := NewHtmlReportBuilder(outputDir, testContext(t, "Empty"))

	require.NoError(t, builder.CreateReport(analyzer.NewResultAnalyzer(nil)))

	_, err := os.Stat(filepath.Join(outputDir, "index.html"))
	assert.NoError(t, err)
}

func TestBuildPie(t *testing.T) {
	t.Run("omits zero categories", func(t *testing.T) {
		slices := buildPie(3, 1, 0, 0)
		require.Len(t, slices, 2)
		assert.Equal(t, "passed", slices[0].Label)
		assert.Equal(t, "failed", slices[1].Label)
		assert.NotEmpty(t, slices[0].PathD)
	})

	t.Run("single category renders full circle", func(t *testing.T) {
		slices := buildPie(5, 0, 0, 0)
		require.Len(t, slices, 1)
		assert.True(t, slices[0].Full)
	})

	t.Run("no cases no pie", func(t *testing.T) {
		assert.Empty(t, buildPie(0, 0, 0, 0))
	})
}
