package models

import (
	"errors"
	"time"

	"github.com/uptrace/bun"
)

// MutationCall is the durable per-genome analysis row consumed by
// reporting: one row per successfully aligned mutation, carrying the
// provenance that distinguishes curated calls from model predictions.
type MutationCall struct {
	bun.BaseModel `bun:"table:mutation_calls,alias:mc"`

	ID         int64            `bun:"id,pk,autoincrement" json:"id"`
	GenomeID   string           `bun:"genome_id,notnull" json:"genome_id"`
	Gene       string           `bun:"gene,notnull" json:"gene"`
	Label      string           `bun:"label,notnull" json:"label"`
	Kind       string           `bun:"kind,notnull" json:"kind"`
	Position   int              `bun:"position,notnull" json:"position"`
	Status     string           `bun:"status,notnull" json:"status"`
	Phenotype  *string          `bun:"phenotype" json:"phenotype,omitempty"`
	Provenance string           `bun:"provenance,notnull" json:"provenance"`
	Confidence *NullableFloat64 `bun:"confidence" json:"confidence,omitempty"`
	CreatedAt  time.Time        `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// Validate checks that required call fields are present.
func (c *MutationCall) Validate() error {
	if c.GenomeID == "" {
		return errors.New("genome id is required")
	}
	if c.Gene == "" {
		return errors.New("gene is required")
	}
	if c.Label == "" {
		return errors.New("mutation label is required")
	}
	if c.Position <= 0 {
		return errors.New("position must be positive")
	}
	if c.Status == "" {
		return errors.New("status is required")
	}
	if c.Provenance == "" {
		return errors.New("provenance is required")
	}
	return nil
}

// IsCurated reports whether the call came from the knowledge base rather
// than the statistical model.
func (c *MutationCall) IsCurated() bool {
	return c.Provenance == "knowledge_base"
}

// HasConfidence reports whether any evidence path produced a score.
func (c *MutationCall) HasConfidence() bool {
	return c.Confidence != nil && c.Confidence.Valid
}
