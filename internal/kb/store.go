package kb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/amrwatch/analyzer/internal/classify"
	"github.com/amrwatch/analyzer/internal/models"
	"github.com/amrwatch/analyzer/internal/repositories"
)

// hitFor maps a stored entry's effect class to the terminal status the
// classifier reports on a knowledge-base hit. Curated benign
// polymorphisms terminate as low risk; everything resistance-class
// terminates as resistant.
func hitFor(entry *models.KnowledgeBaseEntry) classify.KBHit {
	hit := classify.KBHit{Phenotype: entry.Phenotype, Status: classify.StatusResistant}
	if entry.Effect == models.EffectSilent {
		hit.Status = classify.StatusPredictedLowRisk
	}
	return hit
}

type key struct {
	gene  string
	label string
}

// MemoryStore serves knowledge-base lookups from an in-memory index built
// once at load time. Immutable afterwards, so it is safe to share across
// worker goroutines without locking.
type MemoryStore struct {
	entries map[key]*models.KnowledgeBaseEntry
}

// NewMemoryStore indexes the given entries.
func NewMemoryStore(entries []*models.KnowledgeBaseEntry) *MemoryStore {
	idx := make(map[key]*models.KnowledgeBaseEntry, len(entries))
	for _, e := range entries {
		idx[key{gene: e.Gene, label: e.Label}] = e
	}
	return &MemoryStore{entries: idx}
}

// Lookup implements classify.KnowledgeBase.
func (s *MemoryStore) Lookup(ctx context.Context, gene, label string) (classify.KBHit, bool, error) {
	entry, ok := s.entries[key{gene: gene, label: label}]
	if !ok {
		return classify.KBHit{}, false, nil
	}
	return hitFor(entry), true, nil
}

// Len returns the number of indexed entries.
func (s *MemoryStore) Len() int {
	return len(s.entries)
}

// SQLStore serves knowledge-base lookups straight from the results
// database, for callers that keep the knowledge base in SQLite rather
// than a seed file.
type SQLStore struct {
	db *bun.DB
}

// NewSQLStore wraps an open database handle.
func NewSQLStore(db *bun.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Lookup implements classify.KnowledgeBase.
func (s *SQLStore) Lookup(ctx context.Context, gene, label string) (classify.KBHit, bool, error) {
	entry, err := repositories.GetKnowledgeBaseEntry(ctx, s.db, gene, label)
	if err != nil {
		return classify.KBHit{}, false, err
	}
	if entry == nil {
		return classify.KBHit{}, false, nil
	}
	return hitFor(entry), true, nil
}
