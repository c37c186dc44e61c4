package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			"CREATE INDEX IF NOT EXISTS idx_kb_entries_gene ON kb_entries(gene)",
			"CREATE INDEX IF NOT EXISTS idx_mutation_calls_genome ON mutation_calls(genome_id)",
			"CREATE INDEX IF NOT EXISTS idx_mutation_calls_gene_position ON mutation_calls(gene, position)",
			"CREATE INDEX IF NOT EXISTS idx_mutation_calls_status ON mutation_calls(status)",
			"CREATE INDEX IF NOT EXISTS idx_cooccurrence_support ON cooccurrence_pairs(support DESC)",
		}

		for _, idx := range indexes {
			if _, err := db.ExecContext(ctx, idx); err != nil {
				return fmt.Errorf("create index: %w", err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			"DROP INDEX IF EXISTS idx_cooccurrence_support",
			"DROP INDEX IF EXISTS idx_mutation_calls_status",
			"DROP INDEX IF EXISTS idx_mutation_calls_gene_position",
			"DROP INDEX IF EXISTS idx_mutation_calls_genome",
			"DROP INDEX IF EXISTS idx_kb_entries_gene",
		}

		for _, idx := range indexes {
			if _, err := db.ExecContext(ctx, idx); err != nil {
				return fmt.Errorf("drop index: %w", err)
			}
		}

		return nil
	})
}
