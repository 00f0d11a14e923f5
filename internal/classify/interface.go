package classify

// Classification labels
const (
	LabelOptimal  = "OPTIMAL"
	LabelCritical = "CRITICAL FAULT"
)

// Classification codes
const (
	CodeOptimal = 0
	CodeFault   = 1
)

// Features are the spectral-proxy quantities derived from one observed
// state. Peak and Energy are deterministic functions of RMS and
// kurtosis, not independently simulated.
type Features struct {
	RMS      float64
	Kurtosis float64
	Peak     float64
	Energy   float64
}

// Result is a binary fault classification.
type Result struct {
	Code  int
	Label string
}

// Classifier decides whether a feature set indicates a fault. The
// trained and heuristic variants are substitutable behind this
// interface; downstream components never depend on which is active.
type Classifier interface {
	Classify(features Features) Result
}

// Predictor is the contract with the offline training collaborator: a
// binary predictor over the ordered feature vector
// [rms, kurtosis, peak, energy]. The order is load-bearing; a predictor
// trained on a different order misclassifies silently.
type Predictor interface {
	Predict(features [4]float64) (int, error)
}
