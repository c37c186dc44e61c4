package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// EffectClass is the curated phenotype class a knowledge-base entry
// encodes for a mutation.
type EffectClass string

const (
	// EffectResistance marks a confirmed resistance mutation.
	EffectResistance EffectClass = "resistance"
	// EffectReducedSusceptibility marks a partial-resistance phenotype.
	EffectReducedSusceptibility EffectClass = "reduced_susceptibility"
	// EffectSilent marks a curated benign polymorphism.
	EffectSilent EffectClass = "silent"
)

// Data source tagging to track where a knowledge-base entry came from.
type DataSource string

const (
	SourceCurated DataSource = "curated"
	SourceCARD    DataSource = "card"
	SourceResFind DataSource = "resfinder"
	SourcePointDB DataSource = "pointfinder"
)

// StringArray stores a slice of strings in SQLite as JSON.
type StringArray []string

func (s StringArray) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = []string{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan StringArray")
	}

	return json.Unmarshal(bytes, s)
}

// NullableFloat64 handles nullable float columns (e.g. confidence when no
// evidence path produced a score).
type NullableFloat64 struct {
	Float64 float64
	Valid   bool
}

func (n NullableFloat64) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Float64, nil
}

func (n *NullableFloat64) Scan(value interface{}) error {
	if value == nil {
		n.Float64 = 0
		n.Valid = false
		return nil
	}

	switch v := value.(type) {
	case float64:
		n.Float64 = v
	case []byte:
		if err := json.Unmarshal(v, &n.Float64); err != nil {
			return err
		}
	default:
		return errors.New("failed to scan NullableFloat64")
	}

	n.Valid = true
	return nil
}
