package utils

import "testing"

func TestFirstLine(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"single line", "AssertionError: x", "AssertionError: x"},
		{"multi line", "AssertionError: x\nmore detail\neven more", "AssertionError: x"},
		{"leading whitespace", "  \n  AssertionError: x\nrest", "AssertionError: x"},
		{"windows line endings", "AssertionError: x\r\nmore", "AssertionError: x"},
		{"empty", "", ""},
		{"only whitespace", "  \n\t ", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FirstLine(tc.input); got != tc.expected {
				t.Errorf("FirstLine(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}
