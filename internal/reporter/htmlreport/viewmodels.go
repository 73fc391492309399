package htmlreport

import (
	"fmt"
	"math"

	"github.com/qa-insights/go-qa-analytics/internal/model"
)

// HTMLReportData holds all data for the report template.
type HTMLReportData struct {
	Title       string
	GeneratedAt string

	TotalSuites  int
	TotalClasses int
	TotalCases   int
	Passed       int
	Failed       int
	Errors       int
	Skipped      int

	OverallPie []PieSlice
	Suites     []SuiteViewModel
	Slowest    []ClassViewModel
	Failures   []CaseViewModel
	Skips      []CaseViewModel
}

// SuiteViewModel is one row of the suite summary table.
type SuiteViewModel struct {
	Name          string
	Tests         int
	Passed        int
	Failures      int
	Errors        int
	Skipped       int
	ExecutionTime string
	Timestamp     string
	Pie           []PieSlice
}

// ClassViewModel is one row of the slowest-classes table.
type ClassViewModel struct {
	Name          string
	Cases         int
	Failed        int
	ExecutionTime string
}

// CaseViewModel is one row of the failed/skipped case listings.
type CaseViewModel struct {
	Name   string
	Class  string
	Module string
	Reason string
}

// PieSlice is one segment of a result-distribution pie chart, precomputed as
// an SVG path so the template stays free of geometry.
type PieSlice struct {
	Label string
	Count int
	Color string
	PathD string
	// Full marks a slice covering the whole pie; it renders as a circle
	// because an SVG arc with equal endpoints collapses to nothing.
	Full bool
}

const (
	pieCX = 60.0
	pieCY = 60.0
	pieR  = 50.0
)

var sliceColors = map[string]string{
	"passed":  "#4caf50",
	"failed":  "#f44336",
	"error":   "#ff9800",
	"skipped": "#9e9e9e",
}

// buildPie converts result counts into pie slices, clockwise from 12 o'clock.
// Zero-count categories are omitted.
func buildPie(passed, failed, errors, skipped int) []PieSlice {
	type category struct {
		label string
		count int
	}
	categories := []category{
		{"passed", passed},
		{"failed", failed},
		{"error", errors},
		{"skipped", skipped},
	}

	total := 0
	for _, c := range categories {
		if c.count > 0 {
			total += c.count
		}
	}
	if total == 0 {
		return nil
	}

	var slices []PieSlice
	angle := -math.Pi / 2 // start at the top
	for _, c := range categories {
		if c.count <= 0 {
			continue
		}
		slice := PieSlice{
			Label: c.label,
			Count: c.count,
			Color: sliceColors[c.label],
		}
		if c.count == total {
			slice.Full = true
			slices = append(slices, slice)
			break
		}
		sweep := 2 * math.Pi * float64(c.count) / float64(total)
		x0 := pieCX + pieR*math.Cos(angle)
		y0 := pieCY + pieR*math.Sin(angle)
		angle += sweep
		x1 := pieCX + pieR*math.Cos(angle)
		y1 := pieCY + pieR*math.Sin(angle)
		largeArc := 0
		if sweep > math.Pi {
			largeArc = 1
		}
		slice.PathD = fmt.Sprintf("M%.2f,%.2f L%.2f,%.2f A%.2f,%.2f 0 %d 1 %.2f,%.2f Z",
			pieCX, pieCY, x0, y0, pieR, pieR, largeArc, x1, y1)
		slices = append(slices, slice)
	}
	return slices
}

func buildCaseViewModels(cases []model.TestCase, reason func(model.TestCase) *string) []CaseViewModel {
	var vms []CaseViewModel
	for _, c := range cases {
		vm := CaseViewModel{
			Name:   c.Name,
			Class:  c.TestClass,
			Module: c.TestModule,
		}
		if r := reason(c); r != nil {
			vm.Reason = *r
		}
		vms = append(vms, vm)
	}
	return vms
}
