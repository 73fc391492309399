// Package model holds the aggregated test-result hierarchy produced by the
// ingestion pipeline: TestSuite (one per report document) containing
// TestClass groups containing TestCase records.
package model

// Result is the outcome of one executed test case.
type Result string

const (
	ResultPassed  Result = "passed"
	ResultFailed  Result = "failed"
	ResultSkipped Result = "skipped"
	ResultError   Result = "error"
)

// TestCase represents one executed test. Instances are created once by the
// case record parser and never mutated afterwards. At most one of
// FailureReason/ErrorReason/SkippedReason is set, and only when Result
// matches; a passed case carries none of them.
type TestCase struct {
	Name          string
	TestModule    string
	TestClass     string
	ExecutionTime float64
	Result        Result
	Timestamp     *string
	FailureReason *string
	ErrorReason   *string
	SkippedReason *string
	SystemOut     *string
}

// TestClass is a named group of test cases sharing a class name. All derived
// fields are computed eagerly by NewTestClass from the full case list, so no
// locking is ever needed at this granularity.
type TestClass struct {
	Name             string
	TestCases        []TestCase
	Passed           int
	Failed           int
	Skipped          int
	Errors           int
	ExecutionTime    float64
	FailedTestCases  []TestCase
	SkippedTestCases []TestCase
	ErrorTestCases   []TestCase
}

// NewTestClass builds a TestClass from an already-known case list, deriving
// counts, execution time and the per-result sublists in one pass. Case order
// is preserved everywhere.
func NewTestClass(name string, testCases []TestCase) TestClass {
	tc := TestClass{
		Name:      name,
		TestCases: testCases,
	}
	for _, c := range testCases {
		switch c.Result {
		case ResultFailed:
			tc.Failed++
			tc.FailedTestCases = append(tc.FailedTestCases, c)
		case ResultSkipped:
			tc.Skipped++
			tc.SkippedTestCases = append(tc.SkippedTestCases, c)
		case ResultError:
			tc.Errors++
			tc.ErrorTestCases = append(tc.ErrorTestCases, c)
		default:
			tc.Passed++
		}
		tc.ExecutionTime += c.ExecutionTime
	}
	return tc
}

// TestSuite is one parsed report document: the suite-level summary attributes
// plus the grouped classes and ungrouped cases attached by the aggregator.
// Once attached, downstream consumers treat the suite as immutable.
type TestSuite struct {
	Name          string
	Tests         int
	Errors        int
	Failures      int
	Skipped       int
	ExecutionTime float64
	Timestamp     string
	TestClasses   []TestClass
	TestCases     []TestCase // cases without a resolvable class name
}

// Passed is always recomputed from the summary attributes and is never
// independently settable. Inconsistent source documents can make it
// negative; that is reported literally rather than clamped.
func (s *TestSuite) Passed() int {
	return s.Tests - s.Errors - s.Failures - s.Skipped
}
