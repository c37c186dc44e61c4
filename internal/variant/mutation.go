// Package variant turns aligned protein pairs into reference-numbered
// mutation records.
package variant

import (
	"errors"
	"fmt"
)

// Kind distinguishes the mutation classes emitted by the detector.
type Kind string

const (
	KindSubstitution Kind = "substitution"
	KindInsertion    Kind = "insertion"
	KindDeletion     Kind = "deletion"
)

// Mutation is a single amino-acid change against the wild-type reference.
// Position uses 1-based reference numbering and counts only non-gap
// reference residues, so labels match conventional literature notation
// (e.g. S83L).
type Mutation struct {
	Gene         string `json:"gene"`
	GenomeID     string `json:"genome_id"`
	Position     int    `json:"position"`
	RefResidue   byte   `json:"-"`
	QueryResidue byte   `json:"-"`
	Kind         Kind   `json:"kind"`
	Label        string `json:"label"`
}

// Validate checks the fields the classifier and stores rely on.
func (m Mutation) Validate() error {
	if m.Gene == "" {
		return errors.New("gene is required")
	}
	if m.GenomeID == "" {
		return errors.New("genome id is required")
	}
	if m.Position <= 0 {
		return errors.New("position must be positive")
	}
	switch m.Kind {
	case KindSubstitution, KindInsertion, KindDeletion:
	default:
		return fmt.Errorf("unknown mutation kind %q", m.Kind)
	}
	if m.Label == "" {
		return errors.New("label is required")
	}
	return nil
}

// IsSubstitution reports whether the mutation is a clean single-residue
// substitution, the only shape the statistical model is defined over.
func (m Mutation) IsSubstitution() bool {
	return m.Kind == KindSubstitution
}

// formatLabel renders the conventional mutation notation for each kind:
// S83L for substitutions, R3del for deletions and 2insR for an insertion
// anchored after reference position 2.
func formatLabel(kind Kind, pos int, ref, query byte) string {
	switch kind {
	case KindSubstitution:
		return fmt.Sprintf("%c%d%c", ref, pos, query)
	case KindDeletion:
		return fmt.Sprintf("%c%ddel", ref, pos)
	case KindInsertion:
		return fmt.Sprintf("%dins%c", pos, query)
	default:
		return fmt.Sprintf("%c%d%c", ref, pos, query)
	}
}
