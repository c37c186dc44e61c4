// Package config loads the analysis run configuration.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/amrwatch/analyzer/internal/align"
	"github.com/amrwatch/analyzer/internal/classify"
	"github.com/amrwatch/analyzer/internal/cooccur"
)

// Config holds one analysis run's settings.
type Config struct {
	Alignment    align.Config    `yaml:"alignment" json:"alignment"`
	Classifier   classify.Config `yaml:"classifier" json:"classifier"`
	Cooccurrence cooccur.Config  `yaml:"cooccurrence" json:"cooccurrence"`

	// ReferenceDir holds one wild-type protein FASTA per gene.
	ReferenceDir string `yaml:"reference_dir" json:"reference_dir"`
	// ModelDir holds the {drug}_predictor.json artifacts.
	ModelDir string `yaml:"model_dir" json:"model_dir"`
	// KnowledgeBaseSeed is the curated YAML seed file.
	KnowledgeBaseSeed string `yaml:"knowledge_base_seed" json:"knowledge_base_seed"`

	DatabaseDSN string `yaml:"database_dsn" json:"database_dsn"`
	Debug       bool   `yaml:"debug" json:"debug"`

	// Workers bounds the per-genome fan-out.
	Workers int `yaml:"workers" json:"workers"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Alignment:    align.DefaultConfig(),
		Classifier:   classify.DefaultConfig(),
		Cooccurrence: cooccur.DefaultConfig(),
		DatabaseDSN:  "file:analysis.db",
		Workers:      runtime.NumCPU(),
	}
}

// Load parses YAML bytes into a Config with defaults applied.
func Load(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return applyDefaults(cfg), nil
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Load(data)
}

func applyDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.Alignment.GapOpen <= 0 {
		cfg.Alignment.GapOpen = def.Alignment.GapOpen
	}
	if cfg.Alignment.GapExtend <= 0 {
		cfg.Alignment.GapExtend = def.Alignment.GapExtend
	}
	if cfg.Classifier.HighRiskThreshold <= 0 || cfg.Classifier.HighRiskThreshold >= 1 {
		cfg.Classifier.HighRiskThreshold = def.Classifier.HighRiskThreshold
	}
	if cfg.Cooccurrence.Granularity == "" {
		cfg.Cooccurrence.Granularity = def.Cooccurrence.Granularity
	}
	if cfg.Cooccurrence.Denominator == "" {
		cfg.Cooccurrence.Denominator = def.Cooccurrence.Denominator
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = def.DatabaseDSN
	}
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	return cfg
}
