package repositories

import (
	"sort"

	"github.com/amrwatch/analyzer/internal/classify"
	"github.com/amrwatch/analyzer/internal/cooccur"
	"github.com/amrwatch/analyzer/internal/models"
)

// ToMutationCall converts a classified result into its durable row.
func ToMutationCall(r classify.Result) *models.MutationCall {
	call := &models.MutationCall{
		GenomeID:   r.GenomeID,
		Gene:       r.Gene,
		Label:      r.Label,
		Kind:       string(r.Kind),
		Position:   r.Position,
		Status:     string(r.Status),
		Provenance: string(r.Provenance),
	}
	if r.Phenotype != "" {
		p := r.Phenotype
		call.Phenotype = &p
	}
	if r.Confidence != nil {
		call.Confidence = &models.NullableFloat64{Float64: *r.Confidence, Valid: true}
	}
	return call
}

// ToMutationCalls converts a batch.
func ToMutationCalls(results []classify.Result) []*models.MutationCall {
	calls := make([]*models.MutationCall, 0, len(results))
	for _, r := range results {
		calls = append(calls, ToMutationCall(r))
	}
	return calls
}

// ToCooccurrencePairs flattens a summary into rows, ordered by canonical
// pair key for stable inserts.
func ToCooccurrencePairs(summary *cooccur.Summary) []*models.CooccurrencePair {
	keys := make([]cooccur.Pair, 0, len(summary.Pairs))
	for pair := range summary.Pairs {
		keys = append(keys, pair)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A != keys[j].A {
			return keys[i].A < keys[j].A
		}
		return keys[i].B < keys[j].B
	})

	rows := make([]*models.CooccurrencePair, 0, len(keys))
	for _, pair := range keys {
		stat := summary.Pairs[pair]
		rows = append(rows, &models.CooccurrencePair{
			MemberA: pair.A,
			MemberB: pair.B,
			Count:   stat.Count,
			Support: stat.Support,
		})
	}
	return rows
}
