package diagnose_test

import (
	"testing"

	"codeberg.org/mutker/motormon/internal/classify"
	"codeberg.org/mutker/motormon/internal/diagnose"
	"codeberg.org/mutker/motormon/internal/sim"
	"github.com/stretchr/testify/assert"
)

var fault = classify.Result{Code: classify.CodeFault, Label: classify.LabelCritical}

func TestDiagnoseBootOverridesClassification(t *testing.T) {
	engine := diagnose.NewEngine()

	// Even a positive fault classification is ignored during boot.
	diagnosis := engine.Diagnose(sim.ModeBooting, fault, classify.Extract(0.38, 7.5))

	assert.Equal(t, diagnose.LabelInitializing, diagnosis.Label)
	assert.Equal(t, diagnose.Guidance(diagnose.CategoryBoot), diagnosis.Recommendation)
}

func TestDiagnoseOptimal(t *testing.T) {
	engine := diagnose.NewEngine()
	healthy := classify.Result{Code: classify.CodeOptimal, Label: classify.LabelOptimal}

	diagnosis := engine.Diagnose(sim.ModeHealthy, healthy, classify.Extract(0.05, 2.2))

	assert.Equal(t, classify.LabelOptimal, diagnosis.Label)
	assert.Equal(t, diagnose.Guidance(diagnose.CategoryOptimal), diagnosis.Recommendation)
}

func TestDiagnoseRuleOrder(t *testing.T) {
	engine := diagnose.NewEngine()

	// rms 0.35 satisfies the unbalance rms threshold, but kurtosis 5.0
	// matches the bearing rule first. Order decides, not predicate truth.
	diagnosis := engine.Diagnose(sim.ModeBearingWear, fault, classify.Extract(0.35, 5.0))

	assert.Equal(t, diagnose.Guidance(diagnose.CategoryBearingFail), diagnosis.Recommendation)
}

func TestDiagnoseBearingFail(t *testing.T) {
	engine := diagnose.NewEngine()

	diagnosis := engine.Diagnose(sim.ModeBearingWear, fault, classify.Extract(0.38, 7.5))

	assert.Equal(t, classify.LabelCritical, diagnosis.Label)
	assert.Equal(t, diagnose.Guidance(diagnose.CategoryBearingFail), diagnosis.Recommendation)
}

func TestDiagnoseUnbalance(t *testing.T) {
	engine := diagnose.NewEngine()

	diagnosis := engine.Diagnose(sim.ModeUnbalance, fault, classify.Extract(0.55, 2.8))

	assert.Equal(t, diagnose.Guidance(diagnose.CategoryUnbalance), diagnosis.Recommendation)
}

func TestDiagnoseHighVibeFallthrough(t *testing.T) {
	engine := diagnose.NewEngine()

	tests := []struct {
		name     string
		rms      float64
		kurtosis float64
	}{
		{"low rms, moderate kurtosis", 0.25, 4.2},
		{"high rms but kurtosis not low", 0.35, 3.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diagnosis := engine.Diagnose(sim.ModeHealthy, fault, classify.Extract(tt.rms, tt.kurtosis))
			assert.Equal(t, diagnose.Guidance(diagnose.CategoryHighVibe), diagnosis.Recommendation)
		})
	}
}
