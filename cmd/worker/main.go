package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/civiai/planning-analyzer/internal/bootstrap"
	"github.com/civiai/planning-analyzer/internal/config"
	"github.com/civiai/planning-analyzer/internal/observability/logging"
	"github.com/civiai/planning-analyzer/internal/observability/metrics"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup("worker", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	m := metrics.NewWorkerMetrics("worker")
	metricsServer := &http.Server{
		Addr:    ":" + cfg.WorkerMetricsPort,
		Handler: m.Handler(),
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics_server_error", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	logger.Info("worker_subscribed", "subject", cfg.NATSSubject)
	err = app.Queue.SubscribeAnalysisRequested(ctx, func(handlerCtx context.Context, storageKey string) error {
		analyzeCtx, cancel := context.WithTimeout(handlerCtx, 5*time.Minute)
		defer cancel()

		m.StartAnalysis()
		start := time.Now()

		result, err := app.SubmitUC.AnalyzeStored(analyzeCtx, storageKey)
		if err != nil {
			m.FinishAnalysis("worker", time.Since(start), err)
			return err
		}

		resultKey, err := app.SubmitUC.StoreResult(analyzeCtx, storageKey, result)
		m.FinishAnalysis("worker", time.Since(start), err)
		if err != nil {
			return err
		}

		logger.Info("analysis_stored",
			"storage_key", storageKey,
			"result_key", resultKey,
			"document_type", result.DocumentType,
			"compliance_score", result.ComplianceScore,
		)
		return nil
	})
	if err != nil {
		log.Fatalf("worker subscribe error: %v", err)
	}
}
