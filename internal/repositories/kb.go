package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/amrwatch/analyzer/internal/models"
)

// GetKnowledgeBaseEntry fetches the curated entry for a (gene, label)
// pair. Returns (nil, nil) when no entry exists.
func GetKnowledgeBaseEntry(ctx context.Context, db *bun.DB, gene, label string) (*models.KnowledgeBaseEntry, error) {
	entry := new(models.KnowledgeBaseEntry)
	err := db.NewSelect().
		Model(entry).
		Where("gene = ?", gene).
		Where("label = ?", label).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListKnowledgeBaseGenes returns the distinct genes carrying curated
// entries.
func ListKnowledgeBaseGenes(ctx context.Context, db *bun.DB) ([]string, error) {
	var genes []string
	err := db.NewSelect().
		Model((*models.KnowledgeBaseEntry)(nil)).
		ColumnExpr("DISTINCT gene").
		OrderExpr("gene ASC").
		Scan(ctx, &genes)
	return genes, err
}

// UpsertKnowledgeBaseEntries imports seed entries, keyed by (gene, label).
// Re-importing a seed file updates phenotype metadata in place.
func UpsertKnowledgeBaseEntries(ctx context.Context, db *bun.DB, entries []*models.KnowledgeBaseEntry) error {
	if len(entries) == 0 {
		return nil
	}
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("knowledge base entry %s %s: %w", e.Gene, e.Label, err)
		}
	}

	_, err := db.NewInsert().
		Model(&entries).
		On("CONFLICT (gene, label) DO UPDATE").
		Set("effect = EXCLUDED.effect").
		Set("phenotype = EXCLUDED.phenotype").
		Set("structural_ref = EXCLUDED.structural_ref").
		Set("literature_refs = EXCLUDED.literature_refs").
		Set("source = EXCLUDED.source").
		Set("updated_at = CURRENT_TIMESTAMP").
		Exec(ctx)

	return err
}
