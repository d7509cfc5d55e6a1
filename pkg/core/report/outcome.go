package report

import (
	"time"

	"financial_report/pkg/core/llm"
)

// FailurePrefix starts every generation-failure message shown to users.
const FailurePrefix = "Ocorreu um erro ao gerar o relatório: "

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Outcome is the explicit result of one generation attempt: either Text is set
// (success) or Error is (failure), never both.
type Outcome struct {
	ID          string          `json:"id"`
	Status      Status          `json:"status"`
	Text        string          `json:"text,omitempty"`
	Error       string          `json:"error,omitempty"`
	FailureKind llm.FailureKind `json:"failure_kind,omitempty"`
	Selection   Selection       `json:"selection"`
	Prompt      string          `json:"prompt,omitempty"`
	Model       string          `json:"model"`
	CreatedAt   time.Time       `json:"created_at"`
	DurationMs  int64           `json:"duration_ms"`
}

func (o Outcome) OK() bool {
	return o.Status == StatusSuccess
}
