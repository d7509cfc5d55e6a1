package config

import (
	"encoding/json"
	"net/http"

	"financial_report/pkg/core/agent"
	"financial_report/pkg/core/report"
)

// Response lists the non-secret runtime settings.
type Response struct {
	Backend        string `json:"backend"`
	Provider       string `json:"provider"`
	Model          string `json:"model"`
	ArchiveEnabled bool   `json:"archive_enabled"`
	InFlight       bool   `json:"in_flight"`
}

// Handler holds dependencies for config endpoints
type Handler struct {
	AgentMgr       *agent.Manager
	Generator      *report.Generator
	ArchiveEnabled bool
}

// NewHandler creates a new config handler
func NewHandler(agentMgr *agent.Manager, gen *report.Generator, archiveEnabled bool) *Handler {
	return &Handler{
		AgentMgr:       agentMgr,
		Generator:      gen,
		ArchiveEnabled: archiveEnabled,
	}
}

func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers for local dev
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	resp := Response{
		Backend:        h.AgentMgr.GetActiveBackend(),
		Provider:       h.AgentMgr.Provider().Name(),
		Model:          h.AgentMgr.GetModel(),
		ArchiveEnabled: h.ArchiveEnabled,
		InFlight:       h.Generator.InFlight(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
