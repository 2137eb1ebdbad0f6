// Command processor classifies a batch of signals offline: it reads a JSON
// array of signals, runs the full classification pipeline, and writes the
// per-signal results plus the aggregated market intelligence report.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/brandsight/signal-engine/internal/bootstrap"
	"github.com/brandsight/signal-engine/internal/competitors"
	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/logger"
	"github.com/brandsight/signal-engine/internal/signals"
)

// output is the report written to stdout.
type output struct {
	Results      []domain.NationalSignalResult `json:"results"`
	Intelligence *domain.MarketIntelligence    `json:"intelligence"`
}

func main() {
	input := flag.String("input", "-", "path to a JSON array of signals, or - for stdin")
	flag.Parse()

	if err := run(*input); err != nil {
		fmt.Fprintf(os.Stderr, "processor: %v\n", err)
		os.Exit(1)
	}
}

func run(input string) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	log, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	batch, err := readSignals(input)
	if err != nil {
		return err
	}
	log.Info("signals loaded", logger.Int("count", len(batch)), logger.String("input", input))

	registry := competitors.NewRegistry(log)
	ctx := context.Background()
	if dbComps, dbErr := bootstrap.SetupDatabase(ctx, cfg, log); dbErr != nil {
		log.Warn("registry store unavailable, classifying without competitor attribution", logger.Error(dbErr))
	} else {
		defer func() { _ = dbComps.DB.Close() }()
		loaded, loadErr := bootstrap.LoadRegistry(ctx, dbComps.Competitors, log)
		if loadErr != nil {
			return loadErr
		}
		registry = loaded
	}

	classifier := signals.NewClassifier(registry, log)
	intel, results := classifier.GenerateMarketIntelligence(batch)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output{Results: results, Intelligence: intel}); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func readSignals(input string) ([]domain.NationalSignal, error) {
	var r io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var batch []domain.NationalSignal
	if err := json.NewDecoder(r).Decode(&batch); err != nil {
		return nil, fmt.Errorf("decode signals: %w", err)
	}
	return batch, nil
}
