package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"financial_report/pkg/api/server"
	"financial_report/pkg/core/config"
	"financial_report/pkg/core/logger"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables (REPORT_CONFIG only)
	godotenv.Load()

	defaultPath := os.Getenv("REPORT_CONFIG")
	if defaultPath == "" {
		defaultPath = config.DefaultPath
	}
	configPath := flag.String("config", defaultPath, "Path to the settings file (yaml or hjson)")
	flag.Parse()

	// The form is never served without a usable configuration.
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %s (%v)\n", config.UserMessage(err), err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "[WARNING] Failed to open log file: %v\n", err)
	}
	logger.Tagged("CONFIG").Infof("Loaded %s (backend=%s, model=%s)", *configPath, cfg.Backend, cfg.Model)

	srv, err := server.New(context.Background(), cfg)
	if err != nil {
		logger.Tagged("FATAL").Errorf("Startup failed: %v", err)
		os.Exit(1)
	}
	defer srv.Close()

	if err := srv.ListenAndServe(); err != nil {
		logger.Tagged("FATAL").Errorf("Server failed to start: %v", err)
		os.Exit(1)
	}
}
