package junit

import "github.com/qa-insights/go-qa-analytics/internal/xmltree"

// TagLocator resolves the two anchor points of a report document: the suite
// element carrying the summary attributes, and every testcase element in the
// subtree. Both are computed once at construction and cached for the lifetime
// of the locator.
type TagLocator struct {
	root      *xmltree.Element
	testCases []*xmltree.Element
	suite     *xmltree.Element
}

// NewTagLocator inspects the document root. Documents rooted at <testsuites>
// (or any wrapper) expose the first direct <testsuite> child as the suite
// element; documents where the root itself carries the suite attributes fall
// back to the root. The suite element is therefore never nil.
func NewTagLocator(root *xmltree.Element) *TagLocator {
	tl := &TagLocator{root: root}
	tl.testCases = root.FindAll("testcase")
	if suite := root.FindFirst("testsuite"); suite != nil {
		tl.suite = suite
	} else {
		tl.suite = root
	}
	return tl
}

// TestCases returns every case element found anywhere in the document.
func (tl *TagLocator) TestCases() []*xmltree.Element {
	return tl.testCases
}

// SuiteElement returns the element carrying the suite summary attributes.
func (tl *TagLocator) SuiteElement() *xmltree.Element {
	return tl.suite
}
