package citycontext

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfig returns an empty-but-valid city context: bounding box and
// reference points at the null island, no districts. Load falls back to
// this (then writes it to disk) when no city-context file exists yet, the
// same way the teacher's config.Load seeds a fresh deployment.
func DefaultConfig() *Config {
	return &Config{
		CityName:    "unconfigured",
		DefaultZoom: 12,
		Timezone:    "UTC",
		Districts:   map[string]Place{},
		Neighborhoods: map[string]Place{},
		DiasporaStreets: map[string]DiasporaStreet{},
		TierWeights: map[string]float64{
			"tourist_heavy":  0.20,
			"tourist_trap":   0.20,
			"mixed":          0.20,
			"local_foodie":   0.10,
			"diaspora_hub":   0.10,
			"underexplored":  0.10,
			"expat_bubble":   0.15,
		},
		DiasporaAuthenticity: map[string]map[string]float64{},
		RareCuisineWeight:    map[string]float64{},
		CuisineSpecificity:   map[string]float64{},
		MultiStarGuide:       map[string]int{},
		LocalInstitutions:    map[string]LocalInstitution{},
		HipsterFusionKeywords: []string{
			"fusion", "concept", "experience", "gastro-bar", "speakeasy",
		},
		NonRestaurantLocationKeywords: []string{
			"wolf", "food market", "food hall", "casino", "viage",
			"hotel restaurant", "station", "gare", "sncb", "nmbs",
		},
		FamilyNamePatterns: []string{
			`(?i)\bchez\b`, `(?i)\bla maison de\b`, `(?i)\bau bon\b`, `(?i)\bau vieux\b`,
			`(?i)\bau petit\b`, `(?i)\bbij\b`, `(?i)\b't\b`,
		},
	}
}

// Load reads path and unmarshals it into a Config, compiling its pattern
// tables. If the file does not exist, DefaultConfig is written to path and
// returned, matching the teacher's "seed on first run" behavior.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := Save(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to write default city context: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		cfg.compile()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read city context %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse city context %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.compile()
	return cfg, nil
}

// Save marshals cfg to path as YAML, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal city context: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate enforces the configuration-error class of §7: a bad bounding box
// or an overlapping exact-match guide directive must fail loudly at process
// start, never silently misrank.
func (c *Config) Validate() error {
	if c.BoundingBox.MinLat > c.BoundingBox.MaxLat {
		return fmt.Errorf("%w: bounding box min_lat must be <= max_lat", ErrConfiguration)
	}
	if c.BoundingBox.MinLng > c.BoundingBox.MaxLng {
		return fmt.Errorf("%w: bounding box min_lng must be <= max_lng", ErrConfiguration)
	}
	for star := range c.MultiStarGuide {
		if _, dup := c.ValueGuideSet()[star]; dup {
			return fmt.Errorf("%w: %q appears in both multi_star_guide and value_guide", ErrConfiguration, star)
		}
	}
	return nil
}

// ValueGuideSet returns the value-guide names as a set for overlap checks.
func (c *Config) ValueGuideSet() map[string]bool {
	set := make(map[string]bool, len(c.ValueGuide))
	for _, name := range c.ValueGuide {
		set[name] = true
	}
	return set
}
