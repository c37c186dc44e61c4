package kb

import (
	"context"
	"testing"

	"github.com/amrwatch/analyzer/internal/classify"
	"github.com/amrwatch/analyzer/internal/models"
)

const seedYAML = `entries:
  - gene: gyrA
    mutation: S83L
    effect: resistance
    phenotype: fluoroquinolone resistance
    structural_ref: 1AB4
    literature: ["PMID:1850972", "PMID:8384814"]
  - gene: parC
    mutation: S80I
    phenotype: fluoroquinolone resistance
  - gene: gyrA
    mutation: S83A
    effect: silent
    phenotype: no phenotypic change
`

func TestLoadSeed(t *testing.T) {
	entries, err := LoadSeed([]byte(seedYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Gene != "gyrA" || first.Label != "S83L" {
		t.Fatalf("unexpected entry: %+v", first)
	}
	if first.Effect != models.EffectResistance {
		t.Fatalf("expected resistance effect, got %s", first.Effect)
	}
	if first.StructuralRef == nil || *first.StructuralRef != "1AB4" {
		t.Fatalf("expected structural ref, got %v", first.StructuralRef)
	}
	if len(first.LiteratureRefs) != 2 {
		t.Fatalf("expected 2 literature refs, got %v", first.LiteratureRefs)
	}

	// Effect defaults to resistance when curators omit it.
	if entries[1].Effect != models.EffectResistance {
		t.Fatalf("expected default resistance effect, got %s", entries[1].Effect)
	}
}

func TestLoadSeedRejectsUnknownEffect(t *testing.T) {
	bad := `entries:
  - gene: gyrA
    mutation: S83L
    effect: mysterious
    phenotype: something
`
	if _, err := LoadSeed([]byte(bad)); err == nil {
		t.Fatalf("expected error for unknown effect class")
	}
}

func TestLoadSeedRejectsIncompleteEntry(t *testing.T) {
	bad := `entries:
  - gene: gyrA
    mutation: ""
    phenotype: something
`
	if _, err := LoadSeed([]byte(bad)); err == nil {
		t.Fatalf("expected error for missing mutation label")
	}
}

func TestMemoryStoreLookup(t *testing.T) {
	entries, err := LoadSeed([]byte(seedYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store := NewMemoryStore(entries)
	if store.Len() != 3 {
		t.Fatalf("expected 3 indexed entries, got %d", store.Len())
	}

	ctx := context.Background()

	hit, ok, err := store.Lookup(ctx, "gyrA", "S83L")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if hit.Status != classify.StatusResistant {
		t.Fatalf("expected resistant status, got %s", hit.Status)
	}
	if hit.Phenotype != "fluoroquinolone resistance" {
		t.Fatalf("unexpected phenotype %q", hit.Phenotype)
	}

	// Curated silent polymorphisms terminate as low risk.
	hit, ok, _ = store.Lookup(ctx, "gyrA", "S83A")
	if !ok || hit.Status != classify.StatusPredictedLowRisk {
		t.Fatalf("expected low-risk hit for silent entry, got ok=%v %+v", ok, hit)
	}

	if _, ok, _ := store.Lookup(ctx, "gyrA", "D87N"); ok {
		t.Fatalf("expected miss for uncurated mutation")
	}
	if _, ok, _ := store.Lookup(ctx, "rpoB", "S83L"); ok {
		t.Fatalf("expected miss for uncurated gene")
	}
}
