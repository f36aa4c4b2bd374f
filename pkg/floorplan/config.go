package floorplan

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rehmanul/floorplan-engine/pkg/placement"
)

// Config specifies all floor-plan generation parameters. It supports YAML
// parsing and validation, mirroring the teacher's dungeon Config.
type Config struct {
	// RNGSeed is the master seed for deterministic generation. Use 0 to
	// auto-generate from current time.
	RNGSeed uint64 `yaml:"rng_seed" json:"rng_seed"`

	// SizeMix is the target fraction of units per size band; must sum to
	// 1.0 within ±0.01.
	SizeMix placement.SizeMix `yaml:"size_mix" json:"size_mix"`

	// TargetCount is the total number of units the placement engine
	// attempts to place.
	TargetCount int `yaml:"target_count" json:"target_count"`

	// CorridorWidth is the width (m) of generated corridor rectangles.
	CorridorWidth float64 `yaml:"corridor_width" json:"corridor_width"`

	// MinSpacing is the minimum gap (m) enforced between any two placed
	// units.
	MinSpacing float64 `yaml:"min_spacing" json:"min_spacing"`

	// WallBuffer is the half-width (m) applied when buffering linear wall
	// entities into polygons.
	WallBuffer float64 `yaml:"wall_buffer" json:"wall_buffer"`

	// EntranceClearance is the forbidden-ring radius (m) buffered around
	// entrance polygons.
	EntranceClearance float64 `yaml:"entrance_clearance" json:"entrance_clearance"`

	// GAPopulation is the evolutionary search's population size.
	GAPopulation int `yaml:"ga_population" json:"ga_population"`

	// GAGenerations is the maximum number of generations run.
	GAGenerations int `yaml:"ga_generations" json:"ga_generations"`

	// GAMutationRate is the per-chromosome mutation probability.
	GAMutationRate float64 `yaml:"ga_mutation_rate" json:"ga_mutation_rate"`

	// GACrossoverRate is the probability two tournament winners produce a
	// crossover child rather than surviving unchanged.
	GACrossoverRate float64 `yaml:"ga_crossover_rate" json:"ga_crossover_rate"`

	// GAEliteSize is the number of top chromosomes preserved unchanged
	// into the next generation.
	GAEliteSize int `yaml:"ga_elite_size" json:"ga_elite_size"`

	// GADeadlineMS is the wall-clock budget, in milliseconds, for the
	// evolutionary search.
	GADeadlineMS uint64 `yaml:"ga_deadline_ms" json:"ga_deadline_ms"`
}

// DefaultConfig returns the configuration defaults from the external
// interface table: a size mix of {0.10, 0.25, 0.30, 0.35}, target_count 100,
// corridor_width 1.5m, min_spacing 0.3m, wall_buffer 0.15m,
// entrance_clearance 0.20m, and the evolutionary search's default
// parameters.
func DefaultConfig() Config {
	return Config{
		RNGSeed: 0,
		SizeMix: placement.SizeMix{
			F0_1:  0.10,
			F1_3:  0.25,
			F3_5:  0.30,
			F5_10: 0.35,
		},
		TargetCount:       100,
		CorridorWidth:     1.5,
		MinSpacing:        0.3,
		WallBuffer:        0.15,
		EntranceClearance: 0.20,
		GAPopulation:      50,
		GAGenerations:     100,
		GAMutationRate:    0.10,
		GACrossoverRate:   0.70,
		GAEliteSize:       10,
		GADeadlineMS:      60000,
	}
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice on top of
// DefaultConfig, so any field absent from the YAML keeps its default, and
// replaces a zero RNGSeed with a time-based seed before validating.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if cfg.RNGSeed == 0 {
		cfg.RNGSeed = generateSeed()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks all configuration constraints, returning InvalidSizeMix if
// the size mix is malformed and a plain error for any other out-of-range
// field.
func (c *Config) Validate() error {
	sum := c.SizeMix.Sum()
	if sum < 0.99 || sum > 1.01 {
		return InvalidSizeMixError{Sum: sum}
	}
	if c.SizeMix.F0_1 < 0 || c.SizeMix.F1_3 < 0 || c.SizeMix.F3_5 < 0 || c.SizeMix.F5_10 < 0 {
		return InvalidSizeMixError{Sum: sum, Reason: "negative fraction"}
	}
	if c.TargetCount < 0 {
		return fmt.Errorf("target_count must be >= 0, got %d", c.TargetCount)
	}
	if c.CorridorWidth <= 0 {
		return fmt.Errorf("corridor_width must be > 0, got %f", c.CorridorWidth)
	}
	if c.MinSpacing < 0 {
		return fmt.Errorf("min_spacing must be >= 0, got %f", c.MinSpacing)
	}
	if c.WallBuffer <= 0 {
		return fmt.Errorf("wall_buffer must be > 0, got %f", c.WallBuffer)
	}
	if c.EntranceClearance < 0 {
		return fmt.Errorf("entrance_clearance must be >= 0, got %f", c.EntranceClearance)
	}
	if c.GAPopulation <= 0 {
		return fmt.Errorf("ga_population must be > 0, got %d", c.GAPopulation)
	}
	if c.GAGenerations <= 0 {
		return fmt.Errorf("ga_generations must be > 0, got %d", c.GAGenerations)
	}
	if c.GAEliteSize < 0 || c.GAEliteSize > c.GAPopulation {
		return fmt.Errorf("ga_elite_size must be in [0, ga_population], got %d", c.GAEliteSize)
	}
	if c.GAMutationRate < 0 || c.GAMutationRate > 1 {
		return fmt.Errorf("ga_mutation_rate must be in [0, 1], got %f", c.GAMutationRate)
	}
	if c.GACrossoverRate < 0 || c.GACrossoverRate > 1 {
		return fmt.Errorf("ga_crossover_rate must be in [0, 1], got %f", c.GACrossoverRate)
	}
	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic SHA-256 hash of the configuration's YAML
// encoding. Used only for per-stage RNG seed derivation, not as a cache key.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.New()
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], c.RNGSeed)
		h.Write(buf[:])
		return h.Sum(nil)
	}
	h := sha256.New()
	h.Write(data)
	return h.Sum(nil)
}

// searchConfig derives a placement.SearchConfig from the pipeline config.
func (c *Config) searchConfig() placement.SearchConfig {
	return placement.SearchConfig{
		PopulationSize: c.GAPopulation,
		MaxGenerations: c.GAGenerations,
		MutationRate:   c.GAMutationRate,
		CrossoverRate:  c.GACrossoverRate,
		EliteSize:      c.GAEliteSize,
		TournamentSize: 3,
		StallLimit:     20,
		MinSpacing:     c.MinSpacing,
		Deadline:       time.Duration(c.GADeadlineMS) * time.Millisecond,
	}
}

func generateSeed() uint64 {
	now := time.Now().UnixNano()
	if now < 0 {
		now = -now
	}
	seed := uint64(now)
	if seed == 0 {
		seed = 1
	}
	return seed
}
