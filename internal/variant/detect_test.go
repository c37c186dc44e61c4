package variant

import (
	"errors"
	"strings"
	"testing"

	"github.com/amrwatch/analyzer/internal/align"
	"github.com/amrwatch/analyzer/internal/seq"
)

func TestDetectSingleSubstitution(t *testing.T) {
	pair := seq.AlignedPair{Ref: "MSTAVK", Query: "MSTLVK"}

	muts, err := Detect(pair, "gyrA", "g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(muts) != 1 {
		t.Fatalf("expected one mutation, got %d", len(muts))
	}
	m := muts[0]
	if m.Kind != KindSubstitution || m.Position != 4 || m.Label != "A4L" {
		t.Fatalf("expected substitution A4L at 4, got %+v", m)
	}
	if m.RefResidue != 'A' || m.QueryResidue != 'L' {
		t.Fatalf("unexpected residues: %+v", m)
	}
}

func TestDetectInsertion(t *testing.T) {
	pair := seq.AlignedPair{Ref: "MK-T", Query: "MKRT"}

	muts, err := Detect(pair, "parC", "g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(muts) != 1 {
		t.Fatalf("expected one mutation, got %d", len(muts))
	}
	m := muts[0]
	if m.Kind != KindInsertion || m.Position != 2 || m.Label != "2insR" {
		t.Fatalf("expected insertion 2insR anchored at 2, got %+v", m)
	}
}

func TestDetectDeletion(t *testing.T) {
	pair := seq.AlignedPair{Ref: "MKRT", Query: "MK-T"}

	muts, err := Detect(pair, "parC", "g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(muts) != 1 {
		t.Fatalf("expected one mutation, got %d", len(muts))
	}
	m := muts[0]
	if m.Kind != KindDeletion || m.Position != 3 || m.Label != "R3del" {
		t.Fatalf("expected deletion R3del at 3, got %+v", m)
	}
}

func TestDetectIdenticalYieldsEmpty(t *testing.T) {
	pair := seq.AlignedPair{Ref: "MSTAVK", Query: "MSTAVK"}

	muts, err := Detect(pair, "gyrA", "g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(muts) != 0 {
		t.Fatalf("expected no mutations, got %+v", muts)
	}
}

func TestDetectLengthMismatchIsIntegrityError(t *testing.T) {
	pair := seq.AlignedPair{Ref: "MKT", Query: "MKTT"}

	_, err := Detect(pair, "gyrA", "g1")
	var integrity *DataIntegrityError
	if !errors.As(err, &integrity) {
		t.Fatalf("expected *DataIntegrityError, got %v", err)
	}
}

func TestDetectTruncatedQueryEmitsNothing(t *testing.T) {
	// A query that only covers the reference prefix must not report the
	// missing tail as deletions.
	pair := seq.AlignedPair{Ref: "MKTAVL", Query: "MKT---"}

	muts, err := Detect(pair, "gyrA", "g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(muts) != 0 {
		t.Fatalf("truncation reported as mutations: %+v", muts)
	}
}

func TestDetectLeadingGapsEmitNothing(t *testing.T) {
	pair := seq.AlignedPair{Ref: "MKTAVL", Query: "---AVL"}

	muts, err := Detect(pair, "gyrA", "g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(muts) != 0 {
		t.Fatalf("leading gaps reported as mutations: %+v", muts)
	}
}

func TestDetectPositionsUseReferenceNumbering(t *testing.T) {
	// The insertion column must not advance the counter: the substitution
	// after it still carries reference numbering.
	pair := seq.AlignedPair{Ref: "MK-RT", Query: "MKQRW"}

	muts, err := Detect(pair, "gyrA", "g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(muts) != 2 {
		t.Fatalf("expected two mutations, got %+v", muts)
	}
	if muts[0].Kind != KindInsertion || muts[0].Position != 2 {
		t.Fatalf("expected insertion anchored at 2, got %+v", muts[0])
	}
	if muts[1].Kind != KindSubstitution || muts[1].Position != 4 || muts[1].Label != "T4W" {
		t.Fatalf("expected substitution T4W, got %+v", muts[1])
	}
}

func TestDetectPositionInvariant(t *testing.T) {
	pair := seq.AlignedPair{Ref: "MK-RTA-VL", Query: "MKQR-AQWL"}

	muts, err := Detect(pair, "gyrA", "g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	refLen := len(strings.ReplaceAll(pair.Ref, string(seq.Gap), ""))
	last := 0
	for _, m := range muts {
		if m.Position < 1 || m.Position > refLen {
			t.Fatalf("position %d outside [1,%d]: %+v", m.Position, refLen, m)
		}
		if m.Position < last {
			t.Fatalf("mutations not in ascending order: %+v", muts)
		}
		last = m.Position
	}
}

func TestDetectAfterAligningIdenticalSequences(t *testing.T) {
	for _, residues := range []string{"M", "MKT", "MSTAVKLWQHYPRDNC"} {
		s := seq.Sequence{Gene: "gyrA", GenomeID: "g1", Residues: residues}
		pair, err := align.Global(s, s, align.Config{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		muts, err := Detect(pair, s.Gene, s.GenomeID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(muts) != 0 {
			t.Fatalf("detect(align(S, S)) not empty for %q: %+v", residues, muts)
		}
	}
}

func TestMutationValidate(t *testing.T) {
	valid := Mutation{
		Gene:         "gyrA",
		GenomeID:     "g1",
		Position:     83,
		RefResidue:   'S',
		QueryResidue: 'L',
		Kind:         KindSubstitution,
		Label:        "S83L",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid mutation, got error: %v", err)
	}

	invalid := Mutation{}
	if err := invalid.Validate(); err == nil {
		t.Fatalf("expected error for empty mutation")
	}
}
