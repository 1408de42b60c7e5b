package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// PipelineConfig is the process-level configuration for a single build run
// of the reranker: where the raw corpus is read from, where the scored
// corpus is written, and how the run is resourced and logged. It is a
// distinct concern from city context (pkg/citycontext), which describes the
// city being scored rather than how the process runs.
type PipelineConfig struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`

	CityContextPath string `yaml:"city_context_path"`

	HexResolution int `yaml:"hex_resolution"`
	WorkerPoolSize int `yaml:"worker_pool_size"`

	Log LogConfig `yaml:"log"`

	// CommunityEndorsementAPITokenEnv names the environment variable holding
	// the bearer token the external community-mentions ingestor reads; the
	// core never calls out over the network itself, it only documents
	// where the secret lives so the ingestor and this process agree.
	CommunityEndorsementAPITokenEnv string `yaml:"community_endorsement_api_token_env"`
}

// InputConfig names the raw, pre-feature-engineering corpus source.
type InputConfig struct {
	RecordsPath string `yaml:"records_path"`
}

// OutputConfig names where the scored corpus and spatial export are written.
type OutputConfig struct {
	DatabasePath   string `yaml:"database_path"`
	GeoJSONPath    string `yaml:"geojson_path,omitempty"`
}

// LogConfig configures the process logger, following the same shape as the
// pipeline's own Load/Save pattern.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// DefaultPipelineConfig returns a safe zero-state configuration pointing at
// conventional paths under the working directory.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		Input: InputConfig{
			RecordsPath: "data/records.json",
		},
		Output: OutputConfig{
			DatabasePath: "data/corpus.db",
			GeoJSONPath:  "data/cells.geojson",
		},
		CityContextPath: "configs/city.yaml",
		HexResolution:   9,
		WorkerPoolSize:  0, // 0 means "use GOMAXPROCS"
		Log: LogConfig{
			Path:  "logs/build.log",
			Level: "INFO",
		},
		CommunityEndorsementAPITokenEnv: "COMMUNITY_ENDORSEMENT_TOKEN",
	}
}

// LoadPipelineConfig reads path and unmarshals it into a PipelineConfig. If
// the file does not exist, default values are written to path first so that
// subsequent runs (and operators inspecting the file) see the full set of
// tunables.
func LoadPipelineConfig(path string) (*PipelineConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultPipelineConfig()
		if err := SavePipelineConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to write default pipeline config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline config: %w", err)
	}

	cfg := DefaultPipelineConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline config: %w", err)
	}

	loadSecretsFromEnv()

	return cfg, nil
}

// SavePipelineConfig marshals cfg to path, creating parent directories as
// needed.
func SavePipelineConfig(path string, cfg *PipelineConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal pipeline config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// loadSecretsFromEnv loads .env.local then .env into the process
// environment, mirroring the teacher's secret-loading order: local
// overrides committed defaults, and neither file is required to exist.
func loadSecretsFromEnv() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")
}
