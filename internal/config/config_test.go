package config

import (
	"testing"

	"github.com/amrwatch/analyzer/internal/cooccur"
)

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load([]byte(`
reference_dir: /data/references
model_dir: /data/models
knowledge_base_seed: /data/kb.yaml
classifier:
  gene_drugs:
    gyrA: ciprofloxacin
    parC: ciprofloxacin
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ReferenceDir != "/data/references" {
		t.Fatalf("unexpected reference dir %q", cfg.ReferenceDir)
	}
	if cfg.Classifier.GeneDrugs["gyrA"] != "ciprofloxacin" {
		t.Fatalf("unexpected gene drug map: %v", cfg.Classifier.GeneDrugs)
	}

	// Unset fields fall back to defaults.
	if cfg.Alignment.GapOpen != 12 || cfg.Alignment.GapExtend != 2 {
		t.Fatalf("expected default gap penalties, got %+v", cfg.Alignment)
	}
	if cfg.Classifier.HighRiskThreshold != 0.5 {
		t.Fatalf("expected default threshold, got %v", cfg.Classifier.HighRiskThreshold)
	}
	if cfg.Cooccurrence.Granularity != cooccur.GranularityMutation {
		t.Fatalf("expected mutation granularity, got %s", cfg.Cooccurrence.Granularity)
	}
	if cfg.Workers <= 0 {
		t.Fatalf("expected positive worker default, got %d", cfg.Workers)
	}
	if cfg.DatabaseDSN == "" {
		t.Fatalf("expected default database DSN")
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load([]byte(`
alignment:
  gap_open: 15
  gap_extend: 3
classifier:
  high_risk_threshold: 0.7
cooccurrence:
  min_support: 0.2
  denominator: total
workers: 4
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Alignment.GapOpen != 15 || cfg.Alignment.GapExtend != 3 {
		t.Fatalf("unexpected alignment config: %+v", cfg.Alignment)
	}
	if cfg.Classifier.HighRiskThreshold != 0.7 {
		t.Fatalf("unexpected threshold: %v", cfg.Classifier.HighRiskThreshold)
	}
	if cfg.Cooccurrence.MinSupport != 0.2 {
		t.Fatalf("unexpected min support: %v", cfg.Cooccurrence.MinSupport)
	}
	if cfg.Cooccurrence.Denominator != cooccur.DenominatorTotal {
		t.Fatalf("unexpected denominator: %s", cfg.Cooccurrence.Denominator)
	}
	if cfg.Workers != 4 {
		t.Fatalf("unexpected workers: %d", cfg.Workers)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	if _, err := Load([]byte("workers: [not a number")); err == nil {
		t.Fatalf("expected parse error")
	}
}
