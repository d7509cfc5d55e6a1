package report

import "html/template"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Gerador de Relatório Financeiro</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; margin: 0; display: flex; min-height: 100vh; color: #1f2937; }
        aside { width: 300px; background: #f3f4f6; padding: 24px; box-sizing: border-box; }
        main { flex: 1; padding: 32px; max-width: 900px; }
        label { display: block; font-size: 14px; margin: 16px 0 6px; }
        select { width: 100%; padding: 6px; }
        button { margin-top: 24px; width: 100%; padding: 10px; background: #2563eb; color: #fff; border: 0; border-radius: 6px; cursor: pointer; }
        .error { background: #fee2e2; color: #991b1b; padding: 12px 16px; border-radius: 6px; }
        .report-body table { border-collapse: collapse; }
        .report-body td, .report-body th { border: 1px solid #d1d5db; padding: 4px 8px; }
    </style>
</head>
<body>
<aside>
    <form id="report-form" method="POST" action="/">
        <label for="company">Selecione a empresa:</label>
        <select id="company" name="company">
            {{range .Options.Companies}}<option value="{{.}}"{{if eq . $.Selection.Company}} selected{{end}}>{{.}}</option>
            {{end}}
        </select>
        <label for="quarter">Selecione o trimestre:</label>
        <select id="quarter" name="quarter">
            {{range .Options.Quarters}}<option value="{{.}}"{{if eq . $.Selection.Quarter}} selected{{end}}>{{.}}</option>
            {{end}}
        </select>
        <label for="year">Selecione o ano:</label>
        <select id="year" name="year">
            {{range .Options.Years}}<option value="{{.}}"{{if eq . $.Selection.Year}} selected{{end}}>{{.}}</option>
            {{end}}
        </select>
        <label for="language">Selecione o idioma:</label>
        <select id="language" name="language">
            {{range .Options.Languages}}<option value="{{.}}"{{if eq . $.Selection.Language}} selected{{end}}>{{.}}</option>
            {{end}}
        </select>
        <label for="analysis">Selecione a análise:</label>
        <select id="analysis" name="analysis">
            {{range .Options.Analyses}}<option value="{{.}}"{{if eq . $.Selection.Analysis}} selected{{end}}>{{.}}</option>
            {{end}}
        </select>
        <button type="submit">Gerar Relatório</button>
    </form>
</aside>
<main>
    <h1>Gerador de Relatório Financeiro:</h1>
    {{with .Outcome}}{{if .OK}}
    <section id="report">
        <h2>Relatório Gerado:</h2>
        <div class="report-body">{{$.ReportHTML}}</div>
    </section>
    {{else}}
    <div id="error" class="error" role="alert">{{.Error}}</div>
    {{end}}{{end}}
</main>
</body>
</html>
`))
