package report

import (
	"errors"
	"fmt"

	"financial_report/pkg/core/prompt"
)

// ErrInvalidSelection is returned when a value is not part of its catalog list.
var ErrInvalidSelection = errors.New("invalid selection")

// Selection is one set of form choices.
type Selection struct {
	Company  string `json:"company"`
	Quarter  string `json:"quarter"`
	Year     int    `json:"year"`
	Language string `json:"language"`
	Analysis string `json:"analysis"`
}

// DefaultSelection picks the first entry of every list, like an untouched form.
func DefaultSelection() Selection {
	return Selection{
		Company:  Companies[0],
		Quarter:  Quarters[0],
		Year:     Years[0],
		Language: Languages[0],
		Analysis: Analyses[0],
	}
}

// Period is the "{quarter} {year}" string used in the prompt.
func (s Selection) Period() string {
	return prompt.Period(s.Quarter, s.Year)
}

// Validate checks every field against the catalog.
func (s Selection) Validate() error {
	switch {
	case !containsString(Companies, s.Company):
		return fmt.Errorf("%w: company %q", ErrInvalidSelection, s.Company)
	case !containsString(Quarters, s.Quarter):
		return fmt.Errorf("%w: quarter %q", ErrInvalidSelection, s.Quarter)
	case !containsInt(Years, s.Year):
		return fmt.Errorf("%w: year %d", ErrInvalidSelection, s.Year)
	case !containsString(Languages, s.Language):
		return fmt.Errorf("%w: language %q", ErrInvalidSelection, s.Language)
	case !containsString(Analyses, s.Analysis):
		return fmt.Errorf("%w: analysis %q", ErrInvalidSelection, s.Analysis)
	}
	return nil
}

// Prompt renders the report prompt for this selection.
func (s Selection) Prompt() string {
	return prompt.BuildReportPrompt(s.Company, s.Period(), s.Language, s.Analysis)
}
