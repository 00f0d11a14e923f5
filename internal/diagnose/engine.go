package diagnose

import (
	"codeberg.org/mutker/motormon/internal/classify"
	"codeberg.org/mutker/motormon/internal/sim"
)

// Sub-diagnosis thresholds. These overlap the classifier's decision
// boundary; rule order decides the outcome.
const (
	bearingKurtosis   = 4.5
	unbalanceRMS      = 0.30
	unbalanceKurtosis = 3.5
)

// Status label shown while the machine is booting.
const LabelInitializing = "INITIALIZING"

// Diagnosis is a human-readable verdict for one tick.
type Diagnosis struct {
	Label          string
	Recommendation string
}

// Engine converts a classification plus raw features into repair
// guidance by ordered rule evaluation.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Diagnose applies the rule set. During boot the classification is
// ignored entirely. For a positive fault, rules are evaluated in order
// and the first match wins: bearing spalling (high impact factor), then
// mass imbalance (high vibration, low impact), then the generic
// high-vibration mounting fault.
func (e *Engine) Diagnose(mode sim.Mode, result classify.Result, features classify.Features) Diagnosis {
	if mode == sim.ModeBooting {
		return Diagnosis{
			Label:          LabelInitializing,
			Recommendation: Guidance(CategoryBoot),
		}
	}

	if result.Code != classify.CodeFault {
		return Diagnosis{
			Label:          classify.LabelOptimal,
			Recommendation: Guidance(CategoryOptimal),
		}
	}

	switch {
	case features.Kurtosis > bearingKurtosis:
		return Diagnosis{
			Label:          classify.LabelCritical,
			Recommendation: Guidance(CategoryBearingFail),
		}
	case features.RMS > unbalanceRMS && features.Kurtosis < unbalanceKurtosis:
		return Diagnosis{
			Label:          classify.LabelCritical,
			Recommendation: Guidance(CategoryUnbalance),
		}
	default:
		return Diagnosis{
			Label:          classify.LabelCritical,
			Recommendation: Guidance(CategoryHighVibe),
		}
	}
}
