package models

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/bun"
)

// KnowledgeBaseEntry is a curated (gene, mutation label) → phenotype
// record. Read-only at analysis time; loaded once per run.
type KnowledgeBaseEntry struct {
	bun.BaseModel `bun:"table:kb_entries,alias:kb"`

	ID        int64       `bun:"id,pk,autoincrement" json:"id"`
	Gene      string      `bun:"gene,notnull,unique:kb_gene_label" json:"gene"`
	Label     string      `bun:"label,notnull,unique:kb_gene_label" json:"label"`
	Effect    EffectClass `bun:"effect,notnull" json:"effect"`
	Phenotype string      `bun:"phenotype,notnull" json:"phenotype"`
	// StructuralRef cross-references a PDB structure. The numbering match
	// between reference-sequence positions and structure positions is
	// approximate, not guaranteed.
	StructuralRef  *string     `bun:"structural_ref" json:"structural_ref,omitempty"`
	LiteratureRefs StringArray `bun:"literature_refs,type:json,notnull" json:"literature_refs"`
	Source         DataSource  `bun:"source,notnull,default:'curated'" json:"source"`
	CreatedAt      time.Time   `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt      time.Time   `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// BeforeUpdate updates the timestamp on modifications.
func (e *KnowledgeBaseEntry) BeforeUpdate(ctx context.Context, query *bun.UpdateQuery) error {
	e.UpdatedAt = time.Now()
	return nil
}

// Validate checks that required entry fields are present.
func (e *KnowledgeBaseEntry) Validate() error {
	if e.Gene == "" {
		return errors.New("gene is required")
	}
	if e.Label == "" {
		return errors.New("mutation label is required")
	}
	if e.Phenotype == "" {
		return errors.New("phenotype is required")
	}
	switch e.Effect {
	case EffectResistance, EffectReducedSusceptibility, EffectSilent:
	default:
		return errors.New("unknown effect class")
	}
	return nil
}

// ConfersResistance reports whether the entry encodes a resistance-class
// phenotype.
func (e *KnowledgeBaseEntry) ConfersResistance() bool {
	return e.Effect == EffectResistance || e.Effect == EffectReducedSusceptibility
}
