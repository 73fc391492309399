package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseVerbosity(t *testing.T) {
	testCases := []struct {
		input    string
		expected VerbosityLevel
		wantErr  bool
	}{
		{"Verbose", Verbose, false},
		{"info", Info, false},
		{"WARNING", Warning, false},
		{" Error ", Error, false},
		{"off", Off, false},
		{"loud", Info, true},
		{"", Info, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			level, err := ParseVerbosity(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got none", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.input, err)
			}
			if level != tc.expected {
				t.Errorf("ParseVerbosity(%q) = %v, want %v", tc.input, level, tc.expected)
			}
		})
	}
}

func TestLoggerRespectsVerbosity(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Warning)

	logger.Debug("should not appear")
	logger.Info("should not appear either")
	logger.Warn("warning message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Errorf("low-severity messages leaked through: %s", out)
	}
	if !strings.Contains(out, "warning message") || !strings.Contains(out, "error message") {
		t.Errorf("expected warn and error output, got: %s", out)
	}
}

func TestLoggerOffDiscardsEverything(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Off)

	logger.Error("even errors are silenced")

	if buf.Len() != 0 {
		t.Errorf("expected no output with verbosity Off, got: %s", buf.String())
	}
}
