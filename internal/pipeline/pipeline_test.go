package pipeline

import (
	"context"
	"testing"

	"github.com/amrwatch/analyzer/internal/classify"
	"github.com/amrwatch/analyzer/internal/cooccur"
	"github.com/amrwatch/analyzer/internal/kb"
	"github.com/amrwatch/analyzer/internal/refdir"
	"github.com/amrwatch/analyzer/internal/seq"
)

const testSeed = `entries:
  - gene: gyrA
    mutation: A4L
    phenotype: fluoroquinolone resistance
  - gene: parC
    mutation: K2A
    phenotype: fluoroquinolone resistance
`

func testReferences() refdir.References {
	return refdir.References{
		"gyrA": {Gene: "gyrA", Residues: "MSTAVK"},
		"parC": {Gene: "parC", Residues: "MKRT"},
	}
}

func testClassifier(t *testing.T) *classify.Classifier {
	t.Helper()
	entries, err := kb.LoadSeed([]byte(testSeed))
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	return classify.New(
		kb.NewMemoryStore(entries),
		classify.NewRegistry(t.TempDir()),
		classify.Config{GeneDrugs: map[string]string{"gyrA": "ciprofloxacin", "parC": "ciprofloxacin"}},
	)
}

func TestRunClassifiesGenomeCollection(t *testing.T) {
	queries := []seq.Sequence{
		{Gene: "gyrA", GenomeID: "g1", Residues: "MSTLVK"},
		{Gene: "parC", GenomeID: "g1", Residues: "MART"},
		{Gene: "gyrA", GenomeID: "g2", Residues: "MSTLVK"},
		{Gene: "parC", GenomeID: "g2", Residues: "MART"},
	}

	calls, err := Run(context.Background(), Config{Workers: 4}, queries, testReferences(), testClassifier(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 4 {
		t.Fatalf("expected 4 calls, got %d: %+v", len(calls), calls)
	}

	for _, c := range calls {
		if c.Status != classify.StatusResistant || c.Provenance != classify.ProvenanceKnowledgeBase {
			t.Fatalf("expected curated resistant call, got %+v", c)
		}
	}

	// Stable output ordering: genome, gene, position.
	if calls[0].GenomeID != "g1" || calls[0].Gene != "gyrA" || calls[0].Label != "A4L" {
		t.Fatalf("unexpected first call: %+v", calls[0])
	}
	if calls[1].Gene != "parC" || calls[1].Label != "K2A" {
		t.Fatalf("unexpected second call: %+v", calls[1])
	}

	summary := Summarize(calls, cooccur.Config{})
	stat, ok := summary.Pairs[cooccur.NewPair("gyrA:A4L", "parC:K2A")]
	if !ok {
		t.Fatalf("expected co-occurring pair, got %+v", summary.Pairs)
	}
	if stat.Count != 2 {
		t.Fatalf("expected pair count 2, got %d", stat.Count)
	}
}

func TestRunSkipsFailedUnitsWithoutAborting(t *testing.T) {
	queries := []seq.Sequence{
		// No reference for this gene.
		{Gene: "rpoB", GenomeID: "g1", Residues: "MKT"},
		// Empty sequence fails alignment.
		{Gene: "gyrA", GenomeID: "g1", Residues: ""},
		// Healthy unit still processed.
		{Gene: "gyrA", GenomeID: "g2", Residues: "MSTLVK"},
	}

	calls, err := Run(context.Background(), Config{Workers: 2}, queries, testReferences(), testClassifier(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 1 {
		t.Fatalf("expected the healthy unit's call only, got %+v", calls)
	}
	if calls[0].GenomeID != "g2" || calls[0].Label != "A4L" {
		t.Fatalf("unexpected call: %+v", calls[0])
	}
}

func TestRunIdenticalQueriesProduceNoCalls(t *testing.T) {
	queries := []seq.Sequence{
		{Gene: "gyrA", GenomeID: "g1", Residues: "MSTAVK"},
		{Gene: "parC", GenomeID: "g1", Residues: "MKRT"},
	}

	calls, err := Run(context.Background(), Config{Workers: 2}, queries, testReferences(), testClassifier(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 0 {
		t.Fatalf("wild-type queries must produce no calls, got %+v", calls)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	queries := make([]seq.Sequence, 1000)
	for i := range queries {
		queries[i] = seq.Sequence{Gene: "gyrA", GenomeID: "g", Residues: "MSTLVK"}
	}

	if _, err := Run(ctx, Config{Workers: 2}, queries, testReferences(), testClassifier(t)); err == nil {
		t.Fatalf("expected context error")
	}
}
