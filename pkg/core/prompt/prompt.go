// Package prompt builds the instruction sent to the model for a financial report.
// The template is fixed; callers only supply the four slot values.
package prompt

import (
	"fmt"
	"strings"
)

// Variables holds the values substituted into the report template.
type Variables struct {
	Company  string // e.g. "Randstad Brasil"
	Period   string // quarter and year, see Period
	Language string // language the report must be written in
	Analysis string // analysis section the report must include
}

// Period joins a quarter label and a year with a single space ("Q3 2024").
func Period(quarter string, year int) string {
	return fmt.Sprintf("%s %d", quarter, year)
}

// Markers lists the slot markers of the template. None of them may survive rendering.
func Markers() []string {
	return []string{"{{.Company}}", "{{.Period}}", "{{.Language}}", "{{.Analysis}}"}
}

// HasMarkers reports whether s still contains a template action.
func HasMarkers(s string) bool {
	return strings.Contains(s, "{{") || strings.Contains(s, "}}")
}
