package seq

import "fmt"

// Gap marks an insertion or deletion column in an aligned sequence.
const Gap = '-'

// AlignedPair holds the two gapped strings produced by a global alignment.
// Both strings always have identical length; every non-gap column
// corresponds one-to-one across the pair.
type AlignedPair struct {
	Ref   string
	Query string
}

// Validate confirms the equal-length invariant.
func (p AlignedPair) Validate() error {
	if len(p.Ref) != len(p.Query) {
		return fmt.Errorf("aligned pair length mismatch: ref %d, query %d", len(p.Ref), len(p.Query))
	}
	if len(p.Ref) == 0 {
		return fmt.Errorf("aligned pair is empty")
	}
	return nil
}

// Columns returns the alignment length.
func (p AlignedPair) Columns() int {
	return len(p.Ref)
}
