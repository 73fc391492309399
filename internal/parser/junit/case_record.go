package junit

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/qa-insights/go-qa-analytics/internal/model"
	"github.com/qa-insights/go-qa-analytics/internal/utils"
	"github.com/qa-insights/go-qa-analytics/internal/xmltree"
)

// embeddedTimestampRe matches a "YYYYMMDD HH:MM:SS" timestamp at the start of
// a system-out block. Other formats are treated as "no timestamp found"
// rather than guessed at.
var embeddedTimestampRe = regexp.MustCompile(`^(\d{8} \d{2}:\d{2}:\d{2})`)

// parseCaseRecord converts one <testcase> element into a TestCase. Extraction
// problems are logged and leave the affected field absent; they never abort
// the case's construction.
func parseCaseRecord(el *xmltree.Element, logger *slog.Logger) model.TestCase {
	className, moduleName := splitClassName(el.AttrDefault("classname", ""))

	tc := model.TestCase{
		Name:          el.AttrDefault("name", ""),
		TestModule:    moduleName,
		TestClass:     className,
		ExecutionTime: parseFloat(el.AttrDefault("time", "")),
		Result:        caseResult(el),
	}

	switch tc.Result {
	case model.ResultFailed:
		tc.FailureReason = extractReason(el.FindFirst("failure"), "failure", logger)
	case model.ResultError:
		tc.ErrorReason = extractReason(el.FindFirst("error"), "error", logger)
	case model.ResultSkipped:
		tc.SkippedReason = extractSkippedReason(el.FindFirst("skipped"), logger)
	}

	tc.SystemOut = extractSystemOut(el)
	tc.Timestamp = extractTimestamp(el, logger)
	return tc
}

// splitClassName resolves the class and module names from a dot-separated
// classname attribute: the class is the last segment, the module the
// second-to-last. Without a separator the whole value is the class name.
func splitClassName(classname string) (className, moduleName string) {
	if classname == "" {
		return "", ""
	}
	segments := strings.Split(classname, ".")
	className = segments[len(segments)-1]
	if len(segments) >= 2 {
		moduleName = segments[len(segments)-2]
	}
	return className, moduleName
}

// caseResult determines the outcome by child-element presence, in fixed
// priority order. Only the first match is consulted; a case is never both
// failed and skipped.
func caseResult(el *xmltree.Element) model.Result {
	switch {
	case el.FindFirst("failure") != nil:
		return model.ResultFailed
	case el.FindFirst("skipped") != nil:
		return model.ResultSkipped
	case el.FindFirst("error") != nil:
		return model.ResultError
	default:
		return model.ResultPassed
	}
}

// extractReason pulls the diagnostic reason from a failure/error child. A
// present message attribute always wins, truncated to its first line (the
// remainder is captured logging); only without one is the child's own text
// used verbatim. When neither yields anything the absence is logged and the
// field stays unset.
func extractReason(child *xmltree.Element, tag string, logger *slog.Logger) *string {
	if child == nil {
		return nil
	}
	if msg, ok := child.Attr("message"); ok {
		reason := utils.FirstLine(msg)
		return &reason
	}
	if text := strings.TrimSpace(child.Text); text != "" {
		return &text
	}
	logger.Warn("reason not found in child element", "tag", tag)
	return nil
}

// extractSkippedReason reads the skipped child's message attribute. Unlike
// failures there is no fallback to text; absence is reported, not
// substituted.
func extractSkippedReason(child *xmltree.Element, logger *slog.Logger) *string {
	if child == nil {
		return nil
	}
	if msg, ok := child.Attr("message"); ok {
		reason := utils.FirstLine(msg)
		return &reason
	}
	logger.Debug("skipped message not found in skipped tag")
	return nil
}

// extractSystemOut returns the raw captured output of the system-out child.
func extractSystemOut(el *xmltree.Element) *string {
	child := el.FindFirst("system-out")
	if child == nil || child.Text == "" {
		return nil
	}
	text := child.Text
	return &text
}

// extractTimestamp prefers an explicit timestamp attribute on the case
// element, then falls back to a timestamp embedded in the first line of the
// system-out block.
func extractTimestamp(el *xmltree.Element, logger *slog.Logger) *string {
	if ts, ok := el.Attr("timestamp"); ok {
		return &ts
	}
	if child := el.FindFirst("system-out"); child != nil {
		firstLine := utils.FirstLine(child.Text)
		if m := embeddedTimestampRe.FindString(firstLine); m != "" {
			return &m
		}
	}
	logger.Debug("no timestamp found for test case", "name", el.AttrDefault("name", ""))
	return nil
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}
