// ====================================
// File: cmd/offerscope/main.go
// ====================================
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/offerscope/offerscope/internal/compare"
	"github.com/offerscope/offerscope/internal/config"
	"github.com/offerscope/offerscope/internal/engine"
	"github.com/offerscope/offerscope/internal/export"
	"github.com/offerscope/offerscope/internal/logger"
	"github.com/offerscope/offerscope/internal/scenario"
	"github.com/offerscope/offerscope/internal/storage"
	"github.com/offerscope/offerscope/internal/storage/models"
	"github.com/offerscope/offerscope/internal/storage/postgres"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: offerscope <command> [flags] [files...]

commands:
  run <scenario.json>       evaluate one scenario and print the projection
  compare <file> [file...]  evaluate several scenarios and rank them
  list                      show scenarios persisted in storage

flags:
  -config path   config file (default configs/config.yaml)
  -export        write the result to the export directory (run)
  -save          persist the result to storage (run)`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	command := os.Args[1]

	fs := flag.NewFlagSet(command, flag.ExitOnError)
	configPath := fs.String("config", "configs/config.yaml", "path to config file")
	doExport := fs.Bool("export", false, "export the result after evaluation")
	doSave := fs.Bool("save", false, "persist the result to storage")
	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}
	files := fs.Args()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "offerscope: load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.DebugLogging, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "offerscope: init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()

	switch command {
	case "run":
		err = runScenario(ctx, cfg, log, files, *doExport, *doSave)
	case "compare":
		err = runCompare(ctx, cfg, log, files)
	case "list":
		err = runList(ctx, cfg, log)
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		log.Error("Command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "offerscope: %v\n", err)
		os.Exit(1)
	}
}

func runScenario(ctx context.Context, cfg *config.Config, log *zap.Logger, files []string, doExport, doSave bool) error {
	if len(files) != 1 {
		return fmt.Errorf("run expects exactly one scenario file")
	}

	in, err := scenario.LoadFile(files[0])
	if err != nil {
		return err
	}

	res := engine.Evaluate(in)
	log.Info("Scenario evaluated",
		zap.String("file", files[0]),
		zap.String("mode", string(res.Input.Mode)),
		zap.Float64("net_outcome", res.NetOutcome))

	renderSummary(os.Stdout, res)
	renderYearly(os.Stdout, res)
	renderDilution(os.Stdout, res)

	if doExport {
		exporter := export.NewResultExporter(log)
		path, err := exporter.Export(res, export.Options{
			Format:    export.Format(cfg.ExportFormat),
			OutputDir: cfg.ExportDir,
		})
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Fprintf(os.Stdout, "exported to %s\n", path)
	}

	if doSave {
		store, err := openStorage(ctx, cfg, log)
		if err != nil {
			return err
		}

		rec, err := models.NewScenarioRecord(res)
		if err != nil {
			return fmt.Errorf("build record: %w", err)
		}
		if err := store.SaveScenario(ctx, rec); err != nil {
			return fmt.Errorf("save scenario: %w", err)
		}
		fmt.Fprintf(os.Stdout, "saved as %s\n", rec.ID)
	}

	return nil
}

func runCompare(ctx context.Context, cfg *config.Config, log *zap.Logger, files []string) error {
	if len(files) < 2 {
		return fmt.Errorf("compare expects at least two scenario files")
	}

	comparator := compare.New(log, cfg.Workers)
	outcomes, err := comparator.Files(ctx, files)
	if err != nil {
		return err
	}

	renderRanking(os.Stdout, outcomes)
	return nil
}

func runList(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}

	recs, err := store.ListScenarios(ctx, 50, 0)
	if err != nil {
		return fmt.Errorf("list scenarios: %w", err)
	}

	renderStored(os.Stdout, recs)
	return nil
}

func openStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) (storage.Storage, error) {
	if cfg.PostgresURL == "" {
		return nil, fmt.Errorf("postgres_url is not configured")
	}

	store, err := postgres.NewStorage(ctx, cfg.PostgresURL, log)
	if err != nil {
		return nil, err
	}
	if err := store.RunMigrations(); err != nil {
		return nil, err
	}
	return store, nil
}
