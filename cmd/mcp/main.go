package main

import (
	"log"
	"os"

	mcpadapter "github.com/civiai/planning-analyzer/internal/adapters/mcp"
	"github.com/civiai/planning-analyzer/internal/bootstrap"
	"github.com/civiai/planning-analyzer/internal/config"
	"github.com/civiai/planning-analyzer/internal/observability/logging"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()
	// stdout carries the MCP protocol; logs go to stderr.
	logging.SetupWriter(os.Stderr, "mcp", cfg.LogLevel)
	log.SetOutput(os.Stderr)

	app, err := bootstrap.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	server := mcpadapter.NewServer(app.AnalyzeUC, app.SubmitUC, version)
	if err := server.ServeStdio(); err != nil {
		log.Fatalf("mcp server error: %v", err)
	}
}
