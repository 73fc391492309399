// Package analyzer exposes the merged suite collection and derived views to
// the presentation layer.
package analyzer

import (
	"sort"

	"github.com/qa-insights/go-qa-analytics/internal/model"
)

// DefaultSlowestCount is the number of classes returned by SlowestClasses
// when the caller passes a non-positive n.
const DefaultSlowestCount = 10

// ResultAnalyzer is the consumer-facing facade over an ingested suite
// collection. Derived views are memoized; the analyzer must only be used
// after ingestion has completed, when the collection is read-only.
type ResultAnalyzer struct {
	suites    []model.TestSuite
	classes   []model.TestClass
	testCases []model.TestCase
}

// NewResultAnalyzer wraps an ingested suite collection.
func NewResultAnalyzer(suites []model.TestSuite) *ResultAnalyzer {
	return &ResultAnalyzer{suites: suites}
}

// Suites returns the merged suite collection.
func (a *ResultAnalyzer) Suites() []model.TestSuite {
	return a.suites
}

// Classes returns every test class across all suites, in suite order.
func (a *ResultAnalyzer) Classes() []model.TestClass {
	if a.classes == nil {
		a.classes = []model.TestClass{}
		for _, suite := range a.suites {
			a.classes = append(a.classes, suite.TestClasses...)
		}
	}
	return a.classes
}

// TestCases returns the flattened case list: each suite's ungrouped cases
// followed by every grouped case.
func (a *ResultAnalyzer) TestCases() []model.TestCase {
	if a.testCases == nil {
		a.testCases = []model.TestCase{}
		for _, suite := range a.suites {
			a.testCases = append(a.testCases, suite.TestCases...)
		}
		for _, class := range a.Classes() {
			a.testCases = append(a.testCases, class.TestCases...)
		}
	}
	return a.testCases
}

// Len returns the total number of test cases.
func (a *ResultAnalyzer) Len() int {
	return len(a.TestCases())
}

// ClassesByExecutionTime returns all classes sorted by execution time in
// descending order. Ties keep their original encounter order.
func (a *ResultAnalyzer) ClassesByExecutionTime() []model.TestClass {
	classes := a.Classes()
	sorted := make([]model.TestClass, len(classes))
	copy(sorted, classes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExecutionTime > sorted[j].ExecutionTime
	})
	return sorted
}

// SlowestClasses returns the n slowest test classes, slowest first.
func (a *ResultAnalyzer) SlowestClasses(n int) []model.TestClass {
	if n <= 0 {
		n = DefaultSlowestCount
	}
	sorted := a.ClassesByExecutionTime()
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
