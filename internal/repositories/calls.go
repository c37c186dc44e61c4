package repositories

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/amrwatch/analyzer/internal/models"
)

// InsertMutationCalls persists one analysis run's classified calls in a
// transaction, so a failed batch never leaves a half-written genome.
func InsertMutationCalls(ctx context.Context, db *bun.DB, calls []*models.MutationCall) error {
	if len(calls) == 0 {
		return nil
	}
	for _, c := range calls {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("mutation call %s/%s %s: %w", c.GenomeID, c.Gene, c.Label, err)
		}
	}

	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&calls).Exec(ctx)
		return err
	})
}

// GetCallsByGenome fetches all classified calls for a genome, ordered for
// stable report output.
func GetCallsByGenome(ctx context.Context, db *bun.DB, genomeID string) ([]*models.MutationCall, error) {
	var calls []*models.MutationCall
	err := db.NewSelect().
		Model(&calls).
		Where("genome_id = ?", genomeID).
		OrderExpr("gene ASC, position ASC").
		Scan(ctx)
	return calls, err
}

// GetResistantCalls returns curated and high-risk calls across the
// collection, highest confidence first.
func GetResistantCalls(ctx context.Context, db *bun.DB, limit int) ([]*models.MutationCall, error) {
	var calls []*models.MutationCall
	err := db.NewSelect().
		Model(&calls).
		Where("status IN (?)", bun.In([]string{"resistant", "predicted_high_risk"})).
		OrderExpr("confidence DESC").
		Limit(limit).
		Scan(ctx)
	return calls, err
}

// ReplaceCooccurrencePairs rewrites the co-occurrence summary table. The
// summary is derived data rebuilt wholesale per run, never updated
// incrementally.
func ReplaceCooccurrencePairs(ctx context.Context, db *bun.DB, pairs []*models.CooccurrencePair) error {
	for _, p := range pairs {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("co-occurrence pair (%s, %s): %w", p.MemberA, p.MemberB, err)
		}
	}

	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*models.CooccurrencePair)(nil)).Where("1 = 1").Exec(ctx); err != nil {
			return err
		}
		if len(pairs) == 0 {
			return nil
		}
		_, err := tx.NewInsert().Model(&pairs).Exec(ctx)
		return err
	})
}
