// Package filtering applies include/exclude rules to test class names.
// Filters use the familiar report-generator syntax: "+Pattern" includes,
// "-Pattern" excludes, with '*' and '?' wildcards.
package filtering

import (
	"fmt"
	"regexp"
	"strings"
)

// IFilter decides whether a named element appears in the report.
type IFilter interface {
	IsElementIncludedInReport(name string) bool
	HasCustomFilters() bool
}

// DefaultFilter is the default implementation of IFilter. Exclude rules win
// over include rules; with no include rules everything is included.
type DefaultFilter struct {
	includeFilters []*regexp.Regexp
	excludeFilters []*regexp.Regexp
	hasCustom      bool
}

// NewDefaultFilter creates a DefaultFilter from raw rule strings. Empty rules
// are ignored; rules without a '+' or '-' prefix are an error.
func NewDefaultFilter(filters []string) (IFilter, error) {
	df := &DefaultFilter{}
	var errs []string

	for _, f := range filters {
		switch {
		case strings.HasPrefix(f, "+"):
			re, err := createFilterRegex(f)
			if err != nil {
				errs = append(errs, fmt.Sprintf("invalid include filter '%s': %v", f, err))
				continue
			}
			df.includeFilters = append(df.includeFilters, re)
		case strings.HasPrefix(f, "-"):
			re, err := createFilterRegex(f)
			if err != nil {
				errs = append(errs, fmt.Sprintf("invalid exclude filter '%s': %v", f, err))
				continue
			}
			df.excludeFilters = append(df.excludeFilters, re)
		case f != "":
			errs = append(errs, fmt.Sprintf("filter '%s' must start with '+' or '-'", f))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("error creating class filter: %s", strings.Join(errs, "; "))
	}

	df.hasCustom = len(df.includeFilters) > 0 || len(df.excludeFilters) > 0

	if len(df.includeFilters) == 0 {
		re, _ := createFilterRegex("+*")
		df.includeFilters = append(df.includeFilters, re)
	}

	return df, nil
}

// IsElementIncludedInReport checks the given name against the filter rules.
func (df *DefaultFilter) IsElementIncludedInReport(name string) bool {
	for _, excludeRe := range df.excludeFilters {
		if excludeRe.MatchString(name) {
			return false
		}
	}
	for _, includeRe := range df.includeFilters {
		if includeRe.MatchString(name) {
			return true
		}
	}
	return false
}

// HasCustomFilters reports whether any rules were supplied by the user.
func (df *DefaultFilter) HasCustomFilters() bool {
	return df.hasCustom
}

// createFilterRegex converts a filter rule (e.g. "+Test*") to an anchored
// regex. Class names are case-sensitive identifiers, so no (?i) here.
func createFilterRegex(filter string) (*regexp.Regexp, error) {
	if len(filter) < 2 {
		return nil, fmt.Errorf("empty filter pattern")
	}
	pattern := regexp.QuoteMeta(filter[1:])
	pattern = strings.ReplaceAll(pattern, `\*`, ".*")
	pattern = strings.ReplaceAll(pattern, `\?`, ".")
	return regexp.Compile("^" + pattern + "$")
}
