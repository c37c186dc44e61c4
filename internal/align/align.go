// Package align computes global pairwise protein alignments with BLOSUM62
// substitution scoring and affine gap penalties.
package align

import (
	"fmt"

	"github.com/BurntSushi/cablastp/blosum"

	"github.com/amrwatch/analyzer/internal/seq"
)

// Error reports an input pair that cannot be aligned.
type Error struct {
	Gene     string
	GenomeID string
	Reason   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("align %s/%s: %v", e.GenomeID, e.Gene, e.Reason)
}

func (e *Error) Unwrap() error { return e.Reason }

// blosumIndex translates ASCII residue characters to BLOSUM62 matrix
// indices. Residues outside the matrix alphabet fall back to 'X'.
var blosumIndex [256]int

func init() {
	for i := range blosumIndex {
		blosumIndex[i] = -1
	}
	for i := 0; i < len(blosum.Alphabet62); i++ {
		blosumIndex[blosum.Alphabet62[i]] = i
	}
}

func substScore(a, b byte) int {
	ai := blosumIndex[a]
	if ai < 0 {
		ai = blosumIndex[seq.UnknownResidue]
	}
	bi := blosumIndex[b]
	if bi < 0 {
		bi = blosumIndex[seq.UnknownResidue]
	}
	return blosum.Matrix62[ai][bi]
}

// negInf is low enough to never win a max() yet safe from int overflow
// when a penalty is subtracted from it.
const negInf = -(1 << 29)

// Global aligns a reference and a query protein end to end and returns the
// gapped pair. Ties in optimal score resolve toward substitutions because
// the gap-open penalty exceeds every substitution score; the traceback
// additionally prefers the diagonal move on exact ties. Pure function of
// its inputs.
func Global(ref, query seq.Sequence, cfg Config) (seq.AlignedPair, error) {
	if err := ref.Validate(); err != nil {
		return seq.AlignedPair{}, &Error{Gene: ref.Gene, GenomeID: query.GenomeID, Reason: fmt.Errorf("reference: %w", err)}
	}
	if err := query.Validate(); err != nil {
		return seq.AlignedPair{}, &Error{Gene: ref.Gene, GenomeID: query.GenomeID, Reason: fmt.Errorf("query: %w", err)}
	}
	cfg = applyDefaults(cfg)

	r := []byte(ref.Residues)
	q := []byte(query.Residues)
	m, n := ref.Len(), query.Len()
	open, extend := cfg.GapOpen, cfg.GapExtend

	// Gotoh three-state dynamic program, flattened row-major.
	// mm: both residues consumed; dx: gap in the query (deletion);
	// dy: gap in the reference (insertion).
	cols := n + 1
	mm := make([]int, (m+1)*cols)
	dx := make([]int, (m+1)*cols)
	dy := make([]int, (m+1)*cols)

	mm[0] = 0
	dx[0], dy[0] = negInf, negInf
	for j := 1; j <= n; j++ {
		mm[j] = negInf
		dx[j] = negInf
		dy[j] = -(open + (j-1)*extend)
	}
	for i := 1; i <= m; i++ {
		mm[i*cols] = negInf
		dx[i*cols] = -(open + (i-1)*extend)
		dy[i*cols] = negInf
	}

	for i := 1; i <= m; i++ {
		prev := (i - 1) * cols
		cur := i * cols
		for j := 1; j <= n; j++ {
			s := substScore(r[i-1], q[j-1])
			mm[cur+j] = max3(mm[prev+j-1], dx[prev+j-1], dy[prev+j-1]) + s
			dx[cur+j] = max3(mm[prev+j]-open, dx[prev+j]-extend, dy[prev+j]-open)
			dy[cur+j] = max3(mm[cur+j-1]-open, dx[cur+j-1]-open, dy[cur+j-1]-extend)
		}
	}

	refAln, qryAln := traceback(r, q, mm, dx, dy, cols, open, extend)
	return seq.AlignedPair{Ref: string(refAln), Query: string(qryAln)}, nil
}

const (
	stateMatch = iota
	stateDelete
	stateInsert
)

func traceback(r, q []byte, mm, dx, dy []int, cols, open, extend int) ([]byte, []byte) {
	m, n := len(r), len(q)
	refAln := make([]byte, 0, m+n)
	qryAln := make([]byte, 0, m+n)

	i, j := m, n
	state := stateMatch
	end := i*cols + j
	if dx[end] > mm[end] && dx[end] >= dy[end] {
		state = stateDelete
	} else if dy[end] > mm[end] {
		state = stateInsert
	}

	for i > 0 || j > 0 {
		switch {
		case i == 0:
			state = stateInsert
		case j == 0:
			state = stateDelete
		}
		switch state {
		case stateMatch:
			prev := (i-1)*cols + (j - 1)
			// Entry into the match state came from whichever matrix
			// maximized the recurrence; prefer the diagonal on ties.
			switch {
			case mm[prev] >= dx[prev] && mm[prev] >= dy[prev]:
				state = stateMatch
			case dx[prev] >= dy[prev]:
				state = stateDelete
			default:
				state = stateInsert
			}
			i--
			j--
			refAln = append(refAln, r[i])
			qryAln = append(qryAln, q[j])
		case stateDelete:
			prev := (i-1)*cols + j
			switch {
			case dx[prev]-extend >= mm[prev]-open && dx[prev]-extend >= dy[prev]-open:
				state = stateDelete
			case mm[prev]-open >= dy[prev]-open:
				state = stateMatch
			default:
				state = stateInsert
			}
			i--
			refAln = append(refAln, r[i])
			qryAln = append(qryAln, seq.Gap)
		case stateInsert:
			prev := i*cols + (j - 1)
			switch {
			case dy[prev]-extend >= mm[prev]-open && dy[prev]-extend >= dx[prev]-open:
				state = stateInsert
			case mm[prev]-open >= dx[prev]-open:
				state = stateMatch
			default:
				state = stateDelete
			}
			j--
			refAln = append(refAln, seq.Gap)
			qryAln = append(qryAln, q[j])
		}
	}

	reverse(refAln)
	reverse(qryAln)
	return refAln, qryAln
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
