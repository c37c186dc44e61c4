package migrations

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/amrwatch/analyzer/internal/models"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		modelsList := []interface{}{
			(*models.KnowledgeBaseEntry)(nil),
			(*models.MutationCall)(nil),
			(*models.CooccurrencePair)(nil),
		}

		for _, model := range modelsList {
			if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
				return err
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		modelsList := []interface{}{
			(*models.CooccurrencePair)(nil),
			(*models.MutationCall)(nil),
			(*models.KnowledgeBaseEntry)(nil),
		}

		for _, model := range modelsList {
			if _, err := db.NewDropTable().Model(model).IfExists().Exec(ctx); err != nil {
				return err
			}
		}

		return nil
	})
}
