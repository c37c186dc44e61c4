package classify

import (
	"context"
	"errors"
	"log"

	"github.com/amrwatch/analyzer/internal/variant"
)

// KBHit is the classifier's view of a knowledge-base match. Status is the
// terminal call the curated entry encodes, normally StatusResistant.
type KBHit struct {
	Phenotype string
	Status    Status
}

// KnowledgeBase answers curated (gene, mutation label) lookups. Lookup
// errors are treated as misses so a storage hiccup degrades one call
// instead of aborting the batch.
type KnowledgeBase interface {
	Lookup(ctx context.Context, gene, label string) (KBHit, bool, error)
}

// Config tunes the classifier decision thresholds.
type Config struct {
	// HighRiskThreshold separates PredictedHighRisk from PredictedLowRisk
	// on the model's probability score. The default 0.5 is an
	// implementation default, not calibrated per drug.
	HighRiskThreshold float64 `yaml:"high_risk_threshold" json:"high_risk_threshold"`

	// GeneDrugs maps a gene to the antimicrobial whose predictor applies.
	GeneDrugs map[string]string `yaml:"gene_drugs" json:"gene_drugs"`
}

// DefaultConfig returns the standard decision thresholds.
func DefaultConfig() Config {
	return Config{HighRiskThreshold: 0.5}
}

func applyDefaults(cfg Config) Config {
	if cfg.HighRiskThreshold <= 0 || cfg.HighRiskThreshold >= 1 {
		cfg.HighRiskThreshold = DefaultConfig().HighRiskThreshold
	}
	return cfg
}

// Classifier resolves mutations through the hybrid decision walk:
// knowledge base first, statistical model on miss, defined terminal
// statuses otherwise. Pure given its injected collaborators; the only
// side effect is the loader's lazy, memoized model loading.
type Classifier struct {
	kb     KnowledgeBase
	loader ModelLoader
	cfg    Config
}

// New builds a classifier from its collaborators.
func New(kb KnowledgeBase, loader ModelLoader, cfg Config) *Classifier {
	return &Classifier{kb: kb, loader: loader, cfg: applyDefaults(cfg)}
}

// Classify assigns a terminal status to a mutation. It never returns an
// error: every failure path degrades to a defined status so a batch run
// always produces one classified row per mutation.
func (c *Classifier) Classify(ctx context.Context, m variant.Mutation) Result {
	o, hit, score := c.resolve(ctx, m)
	status, phenotype, provenance, confidence := finalize(o, hit, score, c.cfg.HighRiskThreshold)
	return Result{
		Mutation:   m,
		Status:     status,
		Phenotype:  phenotype,
		Provenance: provenance,
		Confidence: confidence,
	}
}

// resolve walks the decision states for one mutation. The knowledge base
// is authoritative: a hit short-circuits before the model path is ever
// consulted.
func (c *Classifier) resolve(ctx context.Context, m variant.Mutation) (outcome, KBHit, float64) {
	hit, ok, err := c.kb.Lookup(ctx, m.Gene, m.Label)
	if err != nil {
		log.Printf("classify %s/%s %s: knowledge base lookup failed, continuing without it: %v",
			m.GenomeID, m.Gene, m.Label, err)
	}
	if ok {
		if hit.Status == "" {
			hit.Status = StatusResistant
		}
		return outcomeKnowledgeBaseHit, hit, 0
	}

	// The model is defined only over single-residue substitutions;
	// indels stay unknown unless curated.
	if !m.IsSubstitution() {
		return outcomeUnknown, KBHit{}, 0
	}

	drug, ok := c.cfg.GeneDrugs[m.Gene]
	if !ok {
		return outcomeModelUnavailable, KBHit{}, 0
	}

	model, err := c.loader.Load(drug)
	if err != nil {
		if !errors.Is(err, ErrNoModel) {
			log.Printf("classify %s/%s %s: model load failed, degrading to VUS: %v",
				m.GenomeID, m.Gene, m.Label, err)
		}
		return outcomeModelUnavailable, KBHit{}, 0
	}

	desc, err := EncodeSubstitution(m.RefResidue, m.QueryResidue)
	if err != nil {
		log.Printf("classify %s/%s %s: %v", m.GenomeID, m.Gene, m.Label, err)
		return outcomeParseFailed, KBHit{}, 0
	}

	return outcomeModelScored, KBHit{}, model.Score(desc)
}
