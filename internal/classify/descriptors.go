package classify

import "fmt"

// Descriptor encodes a substitution as biophysical deltas rather than
// sequence identity, so a trained model generalizes to mutations it has
// never seen.
type Descriptor struct {
	HydropathyDelta float64
	ChargeDelta     float64
	WeightDelta     float64
	AromaticChanged float64 // 1 when aromaticity flips across the substitution
	ProlineInvolved float64 // 1 when either residue is proline
}

// Kyte–Doolittle hydropathy index.
var hydropathy = map[byte]float64{
	'A': 1.8, 'R': -4.5, 'N': -3.5, 'D': -3.5, 'C': 2.5,
	'Q': -3.5, 'E': -3.5, 'G': -0.4, 'H': -3.2, 'I': 4.5,
	'L': 3.8, 'K': -3.9, 'M': 1.9, 'F': 2.8, 'P': -1.6,
	'S': -0.8, 'T': -0.7, 'W': -0.9, 'Y': -1.3, 'V': 4.2,
}

// Side-chain charge at physiological pH.
var charge = map[byte]float64{
	'D': -1, 'E': -1, 'K': 1, 'R': 1, 'H': 0.1,
	'A': 0, 'N': 0, 'C': 0, 'Q': 0, 'G': 0, 'I': 0, 'L': 0,
	'M': 0, 'F': 0, 'P': 0, 'S': 0, 'T': 0, 'W': 0, 'Y': 0, 'V': 0,
}

// Residue molecular weight in daltons.
var molWeight = map[byte]float64{
	'A': 89.1, 'R': 174.2, 'N': 132.1, 'D': 133.1, 'C': 121.2,
	'Q': 146.2, 'E': 147.1, 'G': 75.1, 'H': 155.2, 'I': 131.2,
	'L': 131.2, 'K': 146.2, 'M': 149.2, 'F': 165.2, 'P': 115.1,
	'S': 105.1, 'T': 119.1, 'W': 204.2, 'Y': 181.2, 'V': 117.1,
}

var aromatic = map[byte]bool{'F': true, 'W': true, 'Y': true}

// EncodeSubstitution builds the descriptor vector for a ref→query residue
// change. It fails for residues outside the twenty standard amino acids
// (e.g. the unknown residue symbol), which the caller treats as a parse
// failure rather than an error.
func EncodeSubstitution(ref, query byte) (Descriptor, error) {
	refH, ok := hydropathy[ref]
	if !ok {
		return Descriptor{}, fmt.Errorf("no biophysical descriptors for residue %q", ref)
	}
	qryH, ok := hydropathy[query]
	if !ok {
		return Descriptor{}, fmt.Errorf("no biophysical descriptors for residue %q", query)
	}

	d := Descriptor{
		HydropathyDelta: qryH - refH,
		ChargeDelta:     charge[query] - charge[ref],
		WeightDelta:     molWeight[query] - molWeight[ref],
	}
	if aromatic[ref] != aromatic[query] {
		d.AromaticChanged = 1
	}
	if ref == 'P' || query == 'P' {
		d.ProlineInvolved = 1
	}
	return d, nil
}
