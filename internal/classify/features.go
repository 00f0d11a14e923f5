package classify

import "math"

// Extract derives the feature set from clamped RMS and kurtosis:
// peak = rms * sqrt(2), energy = 10*rms + 0.5*kurtosis.
func Extract(rms, kurtosis float64) Features {
	return Features{
		RMS:      rms,
		Kurtosis: kurtosis,
		Peak:     rms * math.Sqrt2,
		Energy:   10*rms + 0.5*kurtosis,
	}
}

// Vector returns the ordered feature vector consumed by a Predictor.
func (f Features) Vector() [4]float64 {
	return [4]float64{f.RMS, f.Kurtosis, f.Peak, f.Energy}
}
