package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/civiai/planning-analyzer/internal/core/catalog"
	"github.com/civiai/planning-analyzer/internal/core/usecase"
	"github.com/civiai/planning-analyzer/internal/infrastructure/extractor/composite"
	"github.com/civiai/planning-analyzer/internal/infrastructure/storage/localfs"
	"github.com/civiai/planning-analyzer/internal/observability/logging"
)

// analyze runs the compliance engine against a single local document and
// prints the result as JSON, without needing the API or the queue.
func main() {
	rulesPath := flag.String("rules", os.Getenv("ANALYZER_RULES_PATH"), "optional YAML rules override file")
	logLevel := flag.String("log-level", "error", "log level (debug, info, warn, error)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <document>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(2)
	}
	logging.SetupWriter(os.Stderr, "analyze", *logLevel)

	if err := run(context.Background(), flag.Arg(0), *rulesPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path, rulesPath string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	storage, err := localfs.New(filepath.Dir(abs))
	if err != nil {
		return err
	}
	text, err := composite.New(storage).Extract(ctx, filepath.Base(abs))
	if err != nil {
		return err
	}

	rules, err := usecase.LoadRules(rulesPath)
	if err != nil {
		return err
	}

	result, err := usecase.NewAnalyzeUseCase(catalog.New(), rules, nil).Analyze(ctx, text, nil)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
