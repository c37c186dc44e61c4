// Package classify assigns resistance significance to mutation records,
// combining a curated knowledge base with per-drug statistical models.
package classify

import "github.com/amrwatch/analyzer/internal/variant"

// Status is the terminal resistance call for a mutation.
type Status string

const (
	StatusResistant         Status = "resistant"
	StatusPredictedHighRisk Status = "predicted_high_risk"
	StatusPredictedLowRisk  Status = "predicted_low_risk"
	StatusVUS               Status = "vus"
	StatusParseFailed       Status = "unknown_parse_failed"
)

// Provenance records which evidence path produced the call.
type Provenance string

const (
	ProvenanceKnowledgeBase    Provenance = "knowledge_base"
	ProvenanceStatisticalModel Provenance = "statistical_model"
	ProvenanceNone             Provenance = "none"
)

// Result is a mutation record plus its resistance classification.
// Confidence is nil when no evidence path produced a score.
type Result struct {
	variant.Mutation

	Status     Status     `json:"status"`
	Phenotype  string     `json:"phenotype,omitempty"`
	Provenance Provenance `json:"provenance"`
	Confidence *float64   `json:"confidence,omitempty"`
}

// outcome is the resolved state of the hybrid decision walk. The walk
// starts at outcomeUnknown and moves through exactly one evidence path;
// finalize maps the terminal state to classification fields, keeping the
// knowledge-base precedence rule a property of the state machine rather
// than of nested conditionals.
type outcome int

const (
	outcomeUnknown outcome = iota
	outcomeKnowledgeBaseHit
	outcomeModelScored
	outcomeModelUnavailable
	outcomeParseFailed
)

// finalize is the pure transition function from a resolved outcome to the
// terminal classification fields.
func finalize(o outcome, hit KBHit, score, threshold float64) (Status, string, Provenance, *float64) {
	switch o {
	case outcomeKnowledgeBaseHit:
		one := 1.0
		return hit.Status, hit.Phenotype, ProvenanceKnowledgeBase, &one
	case outcomeModelScored:
		s := score
		status := StatusPredictedLowRisk
		if s > threshold {
			status = StatusPredictedHighRisk
		}
		return status, "", ProvenanceStatisticalModel, &s
	case outcomeParseFailed:
		return StatusParseFailed, "", ProvenanceStatisticalModel, nil
	case outcomeModelUnavailable:
		return StatusVUS, "", ProvenanceNone, nil
	default:
		return StatusVUS, "", ProvenanceNone, nil
	}
}
