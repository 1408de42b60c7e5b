package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"localfare/pkg/baseline"
	"localfare/pkg/citycontext"
	"localfare/pkg/config"
	"localfare/pkg/features"
	"localfare/pkg/logging"
	"localfare/pkg/model"
	"localfare/pkg/persist"
	"localfare/pkg/reranker"
	"localfare/pkg/spatial"
)

var (
	configPath = flag.String("config", "configs/pipeline.yaml", "path to the pipeline config file")
	initConfig = flag.Bool("init-config", false, "write a default pipeline config file and exit")
)

func main() {
	flag.Parse()

	if *initConfig {
		if err := config.SavePipelineConfig(*configPath, config.DefaultPipelineConfig()); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write default config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("config file written:", *configPath)
		return
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL ERROR: build failed: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.LoadPipelineConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load pipeline config: %w", err)
	}

	cleanupLogs, err := logging.Init(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer cleanupLogs()

	slog.Info("localfare build started", "input", cfg.Input.RecordsPath, "output", cfg.Output.DatabasePath)

	cityCtx, err := citycontext.Load(cfg.CityContextPath)
	if err != nil {
		return fmt.Errorf("failed to load city context: %w", err)
	}

	raw, err := loadRecords(cfg.Input.RecordsPath)
	if err != nil {
		return fmt.Errorf("failed to load input records: %w", err)
	}
	slog.Info("input records loaded", "count", len(raw))

	grid := spatial.NewGrid()
	engineered := features.Engineer(raw, cityCtx, grid)

	treeEnsemble := baseline.NewTreeEnsemble()
	var predictor baseline.Predictor = treeEnsemble
	scored := reranker.Run(engineered.Kept, cityCtx, predictor, reranker.Options{WorkerPoolSize: cfg.WorkerPoolSize})
	slog.Info("baseline predictor fit", "cv_r2", treeEnsemble.CVR2())

	store, err := persist.Open(cfg.Output.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open corpus database: %w", err)
	}
	defer store.Close()

	if err := store.Replace(scored, cityCtx); err != nil {
		return fmt.Errorf("failed to persist scored corpus: %w", err)
	}
	slog.Info("scored corpus persisted", "count", len(scored), "path", cfg.Output.DatabasePath)

	if cfg.Output.GeoJSONPath != "" {
		if err := writeGeoJSON(scored, grid, cfg.Output.GeoJSONPath); err != nil {
			return fmt.Errorf("failed to export geojson: %w", err)
		}
		slog.Info("spatial export written", "path", cfg.Output.GeoJSONPath)
	}

	return nil
}

func loadRecords(path string) ([]*model.Restaurant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []*model.Restaurant
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse records: %w", err)
	}
	return records, nil
}

func writeGeoJSON(records []*model.Restaurant, grid *spatial.Grid, path string) error {
	cells := spatial.Aggregate(records)
	fc := spatial.ExportGeoJSON(cells, grid)
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal geojson: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
