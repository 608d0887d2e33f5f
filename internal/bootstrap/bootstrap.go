package bootstrap

import (
	"fmt"
	"time"

	"github.com/civiai/planning-analyzer/internal/config"
	"github.com/civiai/planning-analyzer/internal/core/catalog"
	"github.com/civiai/planning-analyzer/internal/core/ports"
	"github.com/civiai/planning-analyzer/internal/core/usecase"
	"github.com/civiai/planning-analyzer/internal/infrastructure/entities/nerhttp"
	"github.com/civiai/planning-analyzer/internal/infrastructure/extractor/composite"
	"github.com/civiai/planning-analyzer/internal/infrastructure/queue/nats"
	"github.com/civiai/planning-analyzer/internal/infrastructure/resilience"
	"github.com/civiai/planning-analyzer/internal/infrastructure/storage/localfs"
)

type App struct {
	Config config.Config

	Storage   ports.ObjectStorage
	Queue     *nats.Queue
	AnalyzeUC *usecase.AnalyzeUseCase
	SubmitUC  *usecase.SubmitDocumentUseCase

	closeFn func()
}

func New(cfg config.Config) (*App, error) {
	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultConfig())

	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: executor,
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	rules, err := usecase.LoadRules(cfg.RulesPath)
	if err != nil {
		queue.Close()
		return nil, fmt.Errorf("load analysis rules: %w", err)
	}

	var recognizer ports.EntityRecognizer
	if cfg.NERURL != "" {
		client := nerhttp.New(cfg.NERURL, time.Duration(cfg.NERTimeoutSeconds)*time.Second)
		recognizer = nerhttp.NewResilientRecognizer(client, executor)
	}

	analyzeUC := usecase.NewAnalyzeUseCase(catalog.New(), rules, recognizer)
	extractor := composite.New(storage)
	submitUC := usecase.NewSubmitDocumentUseCase(storage, queue, extractor, analyzeUC)

	return &App{
		Config:    cfg,
		Storage:   storage,
		Queue:     queue,
		AnalyzeUC: analyzeUC,
		SubmitUC:  submitUC,

		closeFn: func() {
			queue.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
