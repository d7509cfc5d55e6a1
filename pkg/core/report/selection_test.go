package report

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"financial_report/pkg/core/prompt"

	"github.com/stretchr/testify/assert"
)

func TestEveryCombinationBuildsACompletePrompt(t *testing.T) {
	count := 0
	for _, company := range Companies {
		for _, quarter := range Quarters {
			for _, year := range Years {
				for _, language := range Languages {
					for _, analysis := range Analyses {
						sel := Selection{company, quarter, year, language, analysis}
						if err := sel.Validate(); err != nil {
							t.Fatalf("catalog value rejected: %v", err)
						}

						p := sel.Prompt()
						period := quarter + " " + strconv.Itoa(year)
						for _, want := range []string{company, period, language, analysis} {
							if !strings.Contains(p, want) {
								t.Fatalf("prompt for %+v is missing %q", sel, want)
							}
						}
						if prompt.HasMarkers(p) {
							t.Fatalf("prompt for %+v still has template markers", sel)
						}
						count++
					}
				}
			}
		}
	}
	assert.Equal(t, len(Companies)*len(Quarters)*len(Years)*len(Languages)*len(Analyses), count)
}

func TestSelectionPeriod(t *testing.T) {
	sel := Selection{Quarter: "Q3", Year: 2024}
	assert.Equal(t, "Q3 2024", sel.Period())
}

func TestDefaultSelectionIsValid(t *testing.T) {
	sel := DefaultSelection()
	assert.NoError(t, sel.Validate())
	assert.Equal(t, "Randstad Brasil", sel.Company)
	assert.Equal(t, "Q1 2021", sel.Period())
}

func TestSelectionValidate(t *testing.T) {
	base := DefaultSelection()

	cases := map[string]func(s *Selection){
		"company":  func(s *Selection) { s.Company = "Acme" },
		"quarter":  func(s *Selection) { s.Quarter = "Q5" },
		"year":     func(s *Selection) { s.Year = 1999 },
		"language": func(s *Selection) { s.Language = "Klingon" },
		"analysis": func(s *Selection) { s.Analysis = "" },
	}

	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			sel := base
			mutate(&sel)
			err := sel.Validate()
			assert.True(t, errors.Is(err, ErrInvalidSelection))
			assert.Contains(t, err.Error(), field)
		})
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	c := Catalog()
	c.Companies[0] = "changed"
	assert.Equal(t, "Randstad Brasil", Companies[0])
	assert.Len(t, c.Analyses, 13)
}
