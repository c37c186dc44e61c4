// Package seq provides the protein sequence types consumed by the
// alignment and variant-calling stages.
package seq

import (
	"errors"
	"fmt"
)

// Strand of the source gene on the genome.
type Strand string

const (
	StrandForward Strand = "+"
	StrandReverse Strand = "-"
)

// UnknownResidue is the explicit symbol for an ambiguous amino acid.
const UnknownResidue = 'X'

// validResidues holds the twenty standard amino acids plus the unknown
// residue symbol.
var validResidues = map[byte]bool{
	'A': true, 'R': true, 'N': true, 'D': true, 'C': true,
	'Q': true, 'E': true, 'G': true, 'H': true, 'I': true,
	'L': true, 'K': true, 'M': true, 'F': true, 'P': true,
	'S': true, 'T': true, 'W': true, 'Y': true, 'V': true,
	UnknownResidue: true,
}

// ValidResidue reports whether b is an accepted amino-acid symbol.
func ValidResidue(b byte) bool {
	return validResidues[b]
}

// Sequence is a translated protein sequence together with the metadata
// carried over from its extraction header. Treated as immutable once loaded.
type Sequence struct {
	Gene     string `json:"gene"`
	GenomeID string `json:"genome_id"`
	Strand   Strand `json:"strand,omitempty"`
	Start    int64  `json:"start,omitempty"`
	End      int64  `json:"end,omitempty"`
	Residues string `json:"residues"`
}

// Validate checks that the sequence is non-empty, restricted to the
// amino-acid alphabet plus the unknown residue symbol, and carries a
// recognized strand when one is set.
func (s Sequence) Validate() error {
	if s.Residues == "" {
		return errors.New("sequence is empty")
	}
	switch s.Strand {
	case "", StrandForward, StrandReverse:
	default:
		return fmt.Errorf("invalid strand %q", s.Strand)
	}
	for i := 0; i < len(s.Residues); i++ {
		if !ValidResidue(s.Residues[i]) {
			return fmt.Errorf("invalid residue %q at offset %d", s.Residues[i], i)
		}
	}
	return nil
}

// Len returns the number of residues.
func (s Sequence) Len() int {
	return len(s.Residues)
}
