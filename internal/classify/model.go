package classify

import (
	"errors"
	"fmt"
	"math"
)

// Weights are the logistic-regression coefficients over the descriptor
// features, trained offline per antimicrobial.
type Weights struct {
	HydropathyDelta float64 `json:"hydropathy_delta"`
	ChargeDelta     float64 `json:"charge_delta"`
	WeightDelta     float64 `json:"weight_delta"`
	AromaticChanged float64 `json:"aromatic_changed"`
	ProlineInvolved float64 `json:"proline_involved"`
}

// Model is a serialized per-drug resistance predictor.
type Model struct {
	Drug      string  `json:"drug"`
	Intercept float64 `json:"intercept"`
	Weights   Weights `json:"weights"`
}

// Validate rejects artifacts that deserialized but carry no usable
// parameters.
func (m *Model) Validate() error {
	if m.Drug == "" {
		return errors.New("model artifact missing drug name")
	}
	w := m.Weights
	if w.HydropathyDelta == 0 && w.ChargeDelta == 0 && w.WeightDelta == 0 &&
		w.AromaticChanged == 0 && w.ProlineInvolved == 0 {
		return fmt.Errorf("model for %s has all-zero weights", m.Drug)
	}
	return nil
}

// Score returns the resistance probability in [0,1] for a substitution
// descriptor.
func (m *Model) Score(d Descriptor) float64 {
	z := m.Intercept +
		m.Weights.HydropathyDelta*d.HydropathyDelta +
		m.Weights.ChargeDelta*d.ChargeDelta +
		m.Weights.WeightDelta*d.WeightDelta +
		m.Weights.AromaticChanged*d.AromaticChanged +
		m.Weights.ProlineInvolved*d.ProlineInvolved
	return 1.0 / (1.0 + math.Exp(-z))
}
