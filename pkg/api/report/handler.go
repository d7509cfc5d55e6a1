// Package report exposes the report form and its JSON API over HTTP.
package report

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"

	"financial_report/pkg/core/llm"
	"financial_report/pkg/core/logger"
	"financial_report/pkg/core/report"
	"financial_report/pkg/core/utils"
)

// History lists archived outcomes. A nil History means archiving is disabled.
type History interface {
	Recent(ctx context.Context, limit int) ([]report.Outcome, error)
}

// Handler holds dependencies for the report endpoints
type Handler struct {
	gen     *report.Generator
	history History
}

// NewHandler creates a new report handler
func NewHandler(gen *report.Generator, history History) *Handler {
	return &Handler{gen: gen, history: history}
}

// Register mounts every report route on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/", h.HandleForm)
	mux.HandleFunc("/api/report/options", h.HandleOptions)
	mux.HandleFunc("/api/report/generate", h.HandleGenerate)
	mux.HandleFunc("/api/report/history", h.HandleHistory)
}

type pageData struct {
	Options    report.Options
	Selection  report.Selection
	Outcome    *report.Outcome
	ReportHTML template.HTML
}

// HandleForm serves the single-page form (GET) and handles its submission (POST).
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := pageData{
		Options:   report.Catalog(),
		Selection: report.DefaultSelection(),
	}

	switch r.Method {
	case http.MethodGet:
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form body", http.StatusBadRequest)
			return
		}
		data.Selection = selectionFromForm(r)
		out := h.gen.Generate(r.Context(), data.Selection)
		data.Outcome = &out
		if out.OK() {
			data.ReportHTML = renderReport(out.Text)
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		logger.Tagged("HTTP").Errorf("Failed to render page: %v", err)
	}
}

// HandleOptions returns the five selection lists.
func (h *Handler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	setCORS(w, "GET, OPTIONS")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	writeJSON(w, http.StatusOK, report.Catalog())
}

// HandleGenerate runs one generation for a JSON selection and returns the Outcome.
// The report text is passed through unchanged.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	setCORS(w, "POST, OPTIONS")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var sel report.Selection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	out := h.gen.Generate(r.Context(), sel)
	writeJSON(w, statusFor(out), out)
}

// HandleHistory lists recently archived outcomes, newest first.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	setCORS(w, "GET, OPTIONS")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if h.history == nil {
		writeJSON(w, http.StatusOK, []report.Outcome{})
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	outcomes, err := h.history.Recent(r.Context(), limit)
	if err != nil {
		logger.Tagged("HTTP").Errorf("History lookup failed: %v", err)
		http.Error(w, "Failed to load history", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, outcomes)
}

func selectionFromForm(r *http.Request) report.Selection {
	year, _ := strconv.Atoi(r.PostFormValue("year"))
	return report.Selection{
		Company:  r.PostFormValue("company"),
		Quarter:  r.PostFormValue("quarter"),
		Year:     year,
		Language: r.PostFormValue("language"),
		Analysis: r.PostFormValue("analysis"),
	}
}

// renderReport turns the model's Markdown into HTML, falling back to escaped text.
func renderReport(text string) template.HTML {
	html, err := utils.RenderMarkdown(text)
	if err != nil {
		logger.Tagged("HTTP").Warnf("Markdown render failed, showing plain text: %v", err)
		return template.HTML("<pre>" + template.HTMLEscapeString(text) + "</pre>")
	}
	return template.HTML(html)
}

func statusFor(out report.Outcome) int {
	if out.OK() {
		return http.StatusOK
	}
	switch out.FailureKind {
	case llm.FailureInvalid:
		return http.StatusBadRequest
	case llm.FailureBusy:
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

func setCORS(w http.ResponseWriter, methods string) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", methods)
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
