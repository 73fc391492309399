// Package junit parses JUnit-style XML report files into the result model.
// It accepts both the <testsuites>-wrapped dialect and documents where the
// root element itself carries the suite attributes.
package junit

import (
	"encoding/xml"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/qa-insights/go-qa-analytics/internal/filereader"
	"github.com/qa-insights/go-qa-analytics/internal/model"
	"github.com/qa-insights/go-qa-analytics/internal/parser"
	"github.com/qa-insights/go-qa-analytics/internal/xmltree"
)

// JUnitParser implements the parser.ResultParser interface for JUnit-style
// XML reports.
type JUnitParser struct {
}

// NewJUnitParser creates a new JUnitParser.
func NewJUnitParser() parser.ResultParser {
	return &JUnitParser{}
}

func init() {
	parser.RegisterParser(NewJUnitParser())
}

// Name returns the name of the parser.
func (jp *JUnitParser) Name() string {
	return "JUnit"
}

// suiteSummaryAttrs are the attributes a suite element may carry. A root
// bearing any of them is treated as the suite element of an equivalent
// dialect even when it is not named testsuite.
var suiteSummaryAttrs = map[string]bool{
	"tests":    true,
	"failures": true,
	"errors":   true,
	"skipped":  true,
	"skip":     true,
}

// SupportsFile checks whether the given file is likely a JUnit-style XML
// report by sniffing its structure: a testsuites/testsuite element anywhere,
// a root carrying suite summary attributes, or any testcase element in the
// document.
func (jp *JUnitParser) SupportsFile(filePath string) bool {
	if !strings.HasSuffix(filePath, ".xml") {
		return false
	}
	f, err := filereader.Open(filePath)
	if err != nil {
		return false
	}
	defer f.Close()

	decoder := xml.NewDecoder(f)
	decoder.CharsetReader = charset.NewReaderLabel
	sawRoot := false
	for {
		token, err := decoder.Token()
		if err != nil {
			return false
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "testsuites", "testsuite", "testcase":
			return true
		}
		if !sawRoot {
			sawRoot = true
			for _, attr := range se.Attr {
				if suiteSummaryAttrs[attr.Name.Local] {
					return true
				}
			}
		}
	}
}

// Parse loads one report document and aggregates it into a single TestSuite.
func (jp *JUnitParser) Parse(filePath string, config parser.ParserConfig) (*model.TestSuite, error) {
	doc, err := xmltree.ParseFile(filePath)
	if err != nil {
		return nil, err
	}
	locator := NewTagLocator(doc.Root)
	return jp.aggregate(locator, config), nil
}

// aggregate orchestrates the record parsers for one document: the suite
// summary comes from the suite element, cases are grouped by class name into
// TestClass buckets (first-seen bucket order, encounter order within), and
// cases without a class name stay ungrouped at the suite level.
func (jp *JUnitParser) aggregate(locator *TagLocator, config parser.ParserConfig) *model.TestSuite {
	logger := config.Logger()
	suite := parseSuiteRecord(locator.SuiteElement())

	var ungrouped []model.TestCase
	var classOrder []string
	buckets := make(map[string][]model.TestCase)

	for _, caseEl := range locator.TestCases() {
		tc := parseCaseRecord(caseEl, logger)
		if tc.TestClass == "" {
			logger.Debug("test case has no test class", "name", tc.Name)
			ungrouped = append(ungrouped, tc)
			continue
		}
		if !config.ClassFilters().IsElementIncludedInReport(tc.TestClass) {
			logger.Debug("test class excluded by filter", "class", tc.TestClass)
			continue
		}
		if _, seen := buckets[tc.TestClass]; !seen {
			classOrder = append(classOrder, tc.TestClass)
		}
		buckets[tc.TestClass] = append(buckets[tc.TestClass], tc)
	}

	for _, name := range classOrder {
		suite.TestClasses = append(suite.TestClasses, model.NewTestClass(name, buckets[name]))
	}
	suite.TestCases = ungrouped
	return &suite
}
