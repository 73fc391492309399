package processor

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qa-insights/go-qa-analytics/internal/filesystem"
	"github.com/qa-insights/go-qa-analytics/internal/model"
	"github.com/qa-insights/go-qa-analytics/internal/parser/filtering"
	_ "github.com/qa-insights/go-qa-analytics/internal/parser/junit" // register the JUnit parser
)

type testConfig struct{}

func (testConfig) ClassFilters() filtering.IFilter {
	f, _ := filtering.NewDefaultFilter(nil)
	return f
}

func (testConfig) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func suiteDoc(name string, tests int) string {
	return fmt.Sprintf(`<testsuite name="%s" tests="%d"><testcase name="t" classname="pkg.C"/></testsuite>`, name, tests)
}

func newProcessor(root string) *Processor {
	return New(root, filesystem.DefaultFS{}, testConfig{}, testLogger())
}

func suiteNames(suites []model.TestSuite) []string {
	names := make([]string, len(suites))
	for i, s := range suites {
		names[i] = s.Name
	}
	sort.Strings(names)
	return names
}

func TestRunIngestsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.xml", suiteDoc("A", 1))
	writeFile(t, dir, "b.xml", suiteDoc("B", 1))
	writeFile(t, dir, "notes.txt", "not a report")

	suites := newProcessor(dir).Run(4)

	assert.Equal(t, []string{"A", "B"}, suiteNames(suites))
}

func TestRunEndToEndScenario(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "report.xml",
		`<testsuite name="S" tests="5" errors="1" failures="2" skipped="1" time="10.5"><testcase name="t1" classname="C1"/></testsuite>`)
	writeFile(t, dir, "junk.json", `{"not": "xml"}`)

	suites := newProcessor(dir).Run(2)

	require.Len(t, suites, 1)
	suite := suites[0]
	assert.Equal(t, "S", suite.Name)
	assert.Equal(t, 1, suite.Passed())
	require.Len(t, suite.TestClasses, 1)
	assert.Equal(t, "C1", suite.TestClasses[0].Name)
	require.Len(t, suite.TestClasses[0].TestCases, 1)
	assert.Equal(t, "t1", suite.TestClasses[0].TestCases[0].Name)
	assert.Equal(t, model.ResultPassed, suite.TestClasses[0].TestCases[0].Result)
}

func TestRunIngestsDialectRootWithSuiteAttributes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "results.xml",
		`<results name="N" time="3.5"><testcase name="t" classname="pkg.C"/></results>`)

	suites := newProcessor(dir).Run(1)

	require.Len(t, suites, 1)
	assert.Equal(t, "N", suites[0].Name)
	assert.Equal(t, 3.5, suites[0].ExecutionTime)
	require.Len(t, suites[0].TestClasses, 1)
	assert.Equal(t, "C", suites[0].TestClasses[0].Name)
}

func TestRunSingleFileRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "only.xml", suiteDoc("Only", 3))

	suites := newProcessor(filepath.Join(dir, "only.xml")).Run(1)

	require.Len(t, suites, 1)
	assert.Equal(t, "Only", suites[0].Name)
}

func TestRunWorkerCountsProduceIdenticalResults(t *testing.T) {
	dir := t.TempDir()
	const fileCount = 12
	for i := 0; i < fileCount; i++ {
		writeFile(t, dir, fmt.Sprintf("suite%02d.xml", i), suiteDoc(fmt.Sprintf("S%02d", i), i))
	}

	var reference []string
	for _, workers := range []int{1, 2, 10} {
		suites := newProcessor(dir).Run(workers)
		require.Len(t, suites, fileCount, "worker count %d", workers)

		names := suiteNames(suites)
		if reference == nil {
			reference = names
			continue
		}
		assert.Equal(t, reference, names, "worker count %d", workers)
	}
}

func TestRunIsolatesBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.xml", suiteDoc("Good", 1))
	writeFile(t, dir, "broken.xml", "<testsuite><unterminated")
	writeFile(t, dir, "other.xml", suiteDoc("Other", 1))

	suites := newProcessor(dir).Run(3)

	assert.Equal(t, []string{"Good", "Other"}, suiteNames(suites))
}

func TestRunInvalidRootYieldsNothing(t *testing.T) {
	suites := newProcessor(filepath.Join(t.TempDir(), "does-not-exist")).Run(2)
	assert.Empty(t, suites)
}

func TestRunProcessesExactlyOnce(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.xml", suiteDoc("A", 1))

	p := newProcessor(dir)
	first := p.Run(2)
	second := p.Run(2)

	assert.Len(t, first, 1)
	assert.Len(t, second, 1, "second Run must return the memoized collection, not reprocess")
}

func TestRunDefaultsWorkerCount(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.xml", suiteDoc("A", 1))

	suites := newProcessor(dir).Run(0)

	assert.Len(t, suites, 1)
}
