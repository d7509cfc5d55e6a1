// Package server assembles the report generator and its HTTP routes.
package server

import (
	"context"
	"fmt"
	"net/http"

	apiconfig "financial_report/pkg/api/config"
	apireport "financial_report/pkg/api/report"
	"financial_report/pkg/core/agent"
	"financial_report/pkg/core/config"
	"financial_report/pkg/core/logger"
	"financial_report/pkg/core/report"
	"financial_report/pkg/core/store"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Server owns every long-lived dependency of the API process.
type Server struct {
	Addr      string
	AgentMgr  *agent.Manager
	Generator *report.Generator

	pool *pgxpool.Pool
	mux  *http.ServeMux
}

// New builds the provider, the optional archive and the routes from cfg.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	mgr, err := agent.NewManager(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise %s backend: %w", cfg.Backend, err)
	}

	var (
		pool *pgxpool.Pool
		repo *store.ReportRepo
	)
	if cfg.ArchiveEnabled() {
		pool, err = store.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			mgr.Close()
			return nil, err
		}
		repo = store.NewReportRepo(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			mgr.Close()
			return nil, err
		}
		logger.Tagged("ARCHIVE").Info("Report archive enabled")
	}

	s := NewWithManager(cfg.ListenAddr, mgr, repo)
	s.pool = pool
	return s, nil
}

// NewWithManager wires routes around an existing manager. repo may be nil.
func NewWithManager(addr string, mgr *agent.Manager, repo *store.ReportRepo) *Server {
	var (
		archive report.Archive
		history apireport.History
	)
	// keep the interfaces nil rather than holding a typed nil pointer
	if repo != nil {
		archive = repo
		history = repo
	}

	gen := report.NewGenerator(mgr.Provider(), mgr.GetModel(), archive)

	mux := http.NewServeMux()
	apireport.NewHandler(gen, history).Register(mux)
	configHandler := apiconfig.NewHandler(mgr, gen, repo != nil)
	mux.HandleFunc("/api/config", configHandler.HandleConfig)

	return &Server{
		Addr:      addr,
		AgentMgr:  mgr,
		Generator: gen,
		mux:       mux,
	}
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe blocks serving HTTP on s.Addr.
func (s *Server) ListenAndServe() error {
	log := logger.Tagged("HTTP")
	log.Infof("API server starting on %s...", s.Addr)
	log.Info("  - GET  /                       (report form)")
	log.Info("  - POST /                       (form submit)")
	log.Info("  - GET  /api/report/options")
	log.Info("  - POST /api/report/generate")
	log.Info("  - GET  /api/report/history")
	log.Info("  - GET  /api/config")
	return http.ListenAndServe(s.Addr, s.mux)
}

// Close releases the database pool and the model client.
func (s *Server) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
	if err := s.AgentMgr.Close(); err != nil {
		logger.Tagged("HTTP").Warnf("Failed to close provider: %v", err)
	}
}
