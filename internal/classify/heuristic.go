package classify

// Heuristic threshold defaults
const (
	defaultRMSThreshold      = 0.20
	defaultKurtosisThreshold = 4.0
)

// Heuristic is the deterministic threshold classifier. It is the
// fallback when no trained model is available or a prediction faults.
type Heuristic struct {
	RMSThreshold      float64
	KurtosisThreshold float64
}

func NewHeuristic() *Heuristic {
	return &Heuristic{
		RMSThreshold:      defaultRMSThreshold,
		KurtosisThreshold: defaultKurtosisThreshold,
	}
}

func (h *Heuristic) Classify(features Features) Result {
	if features.RMS > h.RMSThreshold || features.Kurtosis > h.KurtosisThreshold {
		return Result{Code: CodeFault, Label: LabelCritical}
	}

	return Result{Code: CodeOptimal, Label: LabelOptimal}
}
