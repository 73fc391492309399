package junit

import (
	"github.com/qa-insights/go-qa-analytics/internal/model"
	"github.com/qa-insights/go-qa-analytics/internal/xmltree"
)

// parseSuiteRecord converts the suite element's attributes into a TestSuite
// with only its summary fields populated; classes and ungrouped cases are
// attached later by the aggregator. Every attribute is optional.
func parseSuiteRecord(el *xmltree.Element) model.TestSuite {
	return model.TestSuite{
		Name:          el.AttrDefault("name", ""),
		Tests:         parseInt(el.AttrDefault("tests", "")),
		Errors:        parseInt(el.AttrDefault("errors", "")),
		Failures:      parseInt(el.AttrDefault("failures", "")),
		Skipped:       suiteSkipped(el),
		ExecutionTime: parseFloat(el.AttrDefault("time", "")),
		Timestamp:     el.AttrDefault("timestamp", ""),
	}
}

// suiteSkipped prefers the legacy "skip" attribute over "skipped"; the first
// one present wins, both absent means 0.
func suiteSkipped(el *xmltree.Element) int {
	if v, ok := el.Attr("skip"); ok {
		return parseInt(v)
	}
	if v, ok := el.Attr("skipped"); ok {
		return parseInt(v)
	}
	return 0
}
