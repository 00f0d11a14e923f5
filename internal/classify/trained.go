package classify

import "codeberg.org/mutker/motormon/internal/logger"

// Trained wraps a black-box predictor. A failed or malformed prediction
// falls back to the heuristic for that tick only; the predictor stays
// active for subsequent ticks.
type Trained struct {
	predictor Predictor
	fallback  *Heuristic
}

func NewTrained(predictor Predictor) *Trained {
	return &Trained{
		predictor: predictor,
		fallback:  NewHeuristic(),
	}
}

func (t *Trained) Classify(features Features) Result {
	code, err := t.predictor.Predict(features.Vector())
	if err != nil {
		logger.Debug().Err(err).Msg("Prediction failed, falling back to heuristic")
		return t.fallback.Classify(features)
	}

	if code != CodeOptimal && code != CodeFault {
		logger.Debug().Int("code", code).Msg("Malformed prediction, falling back to heuristic")
		return t.fallback.Classify(features)
	}

	if code == CodeFault {
		return Result{Code: CodeFault, Label: LabelCritical}
	}

	return Result{Code: CodeOptimal, Label: LabelOptimal}
}
