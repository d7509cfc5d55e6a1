package prompt

import (
	"bytes"
	"text/template"
)

const reportTemplateText = `
Você é um analista financeiro.
Escreva um relatório financeiro detalhado para a empresa "{{.Company}}" para o período {{.Period}}.

O relatório deve ser escrito em {{.Language}} e incluir a seguinte análise:
{{.Analysis}}

Certifique-se de fornecer insights e conclusões para esta seção.
Formate o relatório utilizando Markdown.
`

// text/template performs no escaping, so values land in the prompt verbatim.
var reportTemplate = template.Must(template.New("report").Option("missingkey=error").Parse(reportTemplateText))

// TemplateText returns the raw template, mainly for display and tests.
func TemplateText() string {
	return reportTemplateText
}

// BuildReportPrompt renders the report template with the given values.
func BuildReportPrompt(company, period, language, analysis string) string {
	return Render(Variables{
		Company:  company,
		Period:   period,
		Language: language,
		Analysis: analysis,
	})
}

// Render executes the fixed template. Execution into a bytes.Buffer with a
// struct whose fields all exist cannot fail, so an error here is a programming bug.
func Render(vars Variables) string {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, vars); err != nil {
		panic(err)
	}
	return buf.String()
}
