package variant

import (
	"fmt"

	"github.com/amrwatch/analyzer/internal/seq"
)

// DataIntegrityError signals a malformed aligned pair. The aligner's
// contract makes this unreachable in normal operation, so it is raised as
// a programming-invariant violation rather than swallowed as bad data.
type DataIntegrityError struct {
	Gene     string
	GenomeID string
	RefLen   int
	QueryLen int
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("aligned pair for %s/%s has mismatched lengths: ref %d, query %d",
		e.GenomeID, e.Gene, e.RefLen, e.QueryLen)
}

// Detect walks the aligned pair column by column and emits gap-aware,
// reference-numbered mutation records in ascending position order.
//
// The position counter advances only on non-gap reference columns. A gap
// run in the reference never increments it, and terminal gap runs in
// either sequence (partial or truncated queries) never produce calls:
// columns outside the first and last position where both sequences hold a
// real residue are skipped, so a truncated query yields no spurious
// trailing deletions.
func Detect(pair seq.AlignedPair, gene, genomeID string) ([]Mutation, error) {
	if len(pair.Ref) != len(pair.Query) {
		return nil, &DataIntegrityError{
			Gene:     gene,
			GenomeID: genomeID,
			RefLen:   len(pair.Ref),
			QueryLen: len(pair.Query),
		}
	}

	first, last := alignedExtent(pair)

	muts := []Mutation{}
	pos := 0
	for col := 0; col < len(pair.Ref); col++ {
		r := pair.Ref[col]
		q := pair.Query[col]
		if r != seq.Gap {
			pos++
		}
		if col < first || col > last {
			continue
		}

		switch {
		case r != seq.Gap && q != seq.Gap && r != q:
			muts = append(muts, Mutation{
				Gene:         gene,
				GenomeID:     genomeID,
				Position:     pos,
				RefResidue:   r,
				QueryResidue: q,
				Kind:         KindSubstitution,
				Label:        formatLabel(KindSubstitution, pos, r, q),
			})
		case r == seq.Gap && q != seq.Gap:
			// Insertion anchored at the most recently seen reference
			// residue; the counter does not move.
			muts = append(muts, Mutation{
				Gene:         gene,
				GenomeID:     genomeID,
				Position:     pos,
				QueryResidue: q,
				Kind:         KindInsertion,
				Label:        formatLabel(KindInsertion, pos, 0, q),
			})
		case r != seq.Gap && q == seq.Gap:
			muts = append(muts, Mutation{
				Gene:       gene,
				GenomeID:   genomeID,
				Position:   pos,
				RefResidue: r,
				Kind:       KindDeletion,
				Label:      formatLabel(KindDeletion, pos, r, 0),
			})
		}
	}
	return muts, nil
}

// alignedExtent returns the first and last column where both sequences
// hold a real residue. Everything outside is a terminal gap run from a
// partial sequence, not a mutation.
func alignedExtent(pair seq.AlignedPair) (first, last int) {
	first, last = 0, len(pair.Ref)-1
	for first <= last && (pair.Ref[first] == seq.Gap || pair.Query[first] == seq.Gap) {
		first++
	}
	for last >= first && (pair.Ref[last] == seq.Gap || pair.Query[last] == seq.Gap) {
		last--
	}
	return first, last
}
