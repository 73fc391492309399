package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFilterIncludesEverythingByDefault(t *testing.T) {
	f, err := NewDefaultFilter(nil)
	require.NoError(t, err)

	assert.True(t, f.IsElementIncludedInReport("TestAnything"))
	assert.False(t, f.HasCustomFilters())
}

func TestDefaultFilterRules(t *testing.T) {
	testCases := []struct {
		name     string
		filters  []string
		element  string
		included bool
	}{
		{"include wildcard match", []string{"+Test*"}, "TestLogin", true},
		{"include wildcard miss", []string{"+Test*"}, "BenchLogin", false},
		{"exclude wins over include", []string{"+Test*", "-TestSlow*"}, "TestSlowIO", false},
		{"exclude only keeps rest", []string{"-TestSlow*"}, "TestFast", true},
		{"question mark matches one char", []string{"+TestCase?"}, "TestCase1", true},
		{"question mark is not greedy", []string{"+TestCase?"}, "TestCase12", false},
		{"matching is case sensitive", []string{"+test*"}, "TestLogin", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewDefaultFilter(tc.filters)
			require.NoError(t, err)
			assert.Equal(t, tc.included, f.IsElementIncludedInReport(tc.element))
			assert.True(t, f.HasCustomFilters())
		})
	}
}

func TestDefaultFilterRejectsMalformedRules(t *testing.T) {
	_, err := NewDefaultFilter([]string{"TestNoPrefix"})
	assert.Error(t, err)
}
