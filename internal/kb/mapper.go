package kb

import (
	"fmt"

	"github.com/amrwatch/analyzer/internal/models"
)

// MapToEntry converts a curated seed entry into its storage model.
func MapToEntry(s SeedEntry) (*models.KnowledgeBaseEntry, error) {
	entry := &models.KnowledgeBaseEntry{
		Gene:           s.Gene,
		Label:          s.Mutation,
		Phenotype:      s.Phenotype,
		LiteratureRefs: models.StringArray(s.Literature),
		Source:         models.SourceCurated,
	}

	switch s.Effect {
	case "", string(models.EffectResistance):
		entry.Effect = models.EffectResistance
	case string(models.EffectReducedSusceptibility):
		entry.Effect = models.EffectReducedSusceptibility
	case string(models.EffectSilent):
		entry.Effect = models.EffectSilent
	default:
		return nil, fmt.Errorf("entry %s %s: unknown effect %q", s.Gene, s.Mutation, s.Effect)
	}

	if s.StructuralRef != "" {
		ref := s.StructuralRef
		entry.StructuralRef = &ref
	}
	if s.Source != "" {
		entry.Source = models.DataSource(s.Source)
	}

	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("entry %s %s: %w", s.Gene, s.Mutation, err)
	}
	return entry, nil
}
