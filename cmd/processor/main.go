// Command processor runs the full sales pipeline: load the raw batch,
// clean it, mine association rules and write the exports and reports.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"megasuper/internal/cleaning"
	"megasuper/internal/config"
	"megasuper/internal/exporter"
	"megasuper/internal/files"
	"megasuper/internal/infrastructure"
	"megasuper/internal/loader"
	"megasuper/internal/mining"
	"megasuper/internal/report"
	"megasuper/internal/validation"
)

func main() {
	inFile := flag.String("in", "", "input sales file, CSV or XLSX (defaults to configured path)")
	outDir := flag.String("out", "", "output directory for cleaned data (defaults to configured path)")
	reportsDir := flag.String("reports", "", "output directory for markdown reports (defaults to configured path)")
	minSupport := flag.Float64("min-support", 0, "minimum itemset support (defaults to configured value)")
	minConfidence := flag.Float64("min-confidence", 0, "minimum rule confidence (defaults to configured value)")
	seed := flag.Int64("seed", 1, "seed for synthetic postal-code generation")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	applyFlags(cfg, *inFile, *outDir, *reportsDir, *minSupport, *minConfidence)

	if err := cfg.EnsureDirectories(); err != nil {
		slog.Error("Failed to create output directories", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger, *seed); err != nil {
		logger.Error("Pipeline run failed", "error", err)
		os.Exit(1)
	}
}

func applyFlags(cfg *config.Config, inFile, outDir, reportsDir string, minSupport, minConfidence float64) {
	if inFile != "" {
		cfg.Paths.InputFile = inFile
	}
	if outDir != "" {
		cfg.Paths.OutputDir = outDir
	}
	if reportsDir != "" {
		cfg.Paths.ReportsDir = reportsDir
	}
	if minSupport > 0 {
		cfg.Mining.MinSupport = minSupport
	}
	if minConfidence > 0 {
		cfg.Mining.MinConfidence = minConfidence
	}
}

// resolveInput accepts either a sales file or a directory; a directory
// resolves to its most recent sales file.
func resolveInput(path string, logger *slog.Logger) (string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return path, nil
	}

	latest, err := files.NewDiscovery(path).LatestSalesFile()
	if err != nil {
		return "", err
	}
	logger.Info("Resolved input directory to newest sales file",
		slog.String("dir", path),
		slog.String("file", latest.Name))
	return latest.Path, nil
}

func run(cfg *config.Config, logger *slog.Logger, seed int64) error {
	ctx := context.Background()

	inputFile, err := resolveInput(cfg.Paths.InputFile, logger)
	if err != nil {
		return err
	}
	if err := validation.NewInputValidator(logger).ValidateInputFile(inputFile); err != nil {
		return err
	}

	raw, err := loader.Load(inputFile, logger)
	if err != nil {
		return err
	}

	pipeline := cleaning.NewPipeline(cleaning.Options{
		Sentinel: cfg.Cleaning.UnspecifiedSentinel,
		Seed:     seed,
		Logger:   logger,
	})
	records, stats, err := pipeline.Run(ctx, raw)
	if err != nil {
		return err
	}

	if err := cleaning.Verify(records); err != nil {
		return err
	}

	writer := exporter.NewCSVWriter(cfg.Paths.OutputDir)
	if err := writer.WriteCleanedCSV("vendas_limpo.csv", records); err != nil {
		return err
	}

	store, err := exporter.OpenStore(filepath.Join(cfg.Paths.OutputDir, "vendas.sqlite"))
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveCleanedBatch(records); err != nil {
		return err
	}

	baskets := mining.BuildBaskets(records)
	miner := mining.NewMiner(cfg.Mining.MinSupport, cfg.Mining.MinConfidence, logger)
	ruleSet := miner.Mine(baskets)

	if err := writer.WriteRulesCSV("regras_associacao.csv", mining.ByLift(ruleSet.Rules)); err != nil {
		return err
	}
	if err := store.SaveRules(ruleSet.Rules); err != nil {
		return err
	}

	reports := report.NewWriter(cfg.Paths.ReportsDir, logger)
	if err := reports.WriteCleaningReport("relatorio_limpeza.md", stats); err != nil {
		return err
	}
	if err := reports.WriteAssociationReport("relatorio_associacao.md", ruleSet, cfg.Mining.TopRules); err != nil {
		return err
	}

	logger.Info("Run complete",
		slog.String("run_id", stats.RunID),
		slog.Int("records", len(records)),
		slog.Int("rules", len(ruleSet.Rules)))
	return nil
}
