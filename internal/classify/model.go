package classify

import (
	"encoding/json"
	"os"

	"codeberg.org/mutker/motormon/internal/errors"
	"codeberg.org/mutker/motormon/internal/logger"
)

// LinearModel is a Predictor over the exported decision function of the
// offline trainer: sign(w · x + b). The on-disk pickle belongs to the
// training pipeline; it exports the boundary as a small JSON document.
type LinearModel struct {
	Weights [4]float64 `json:"weights"`
	Bias    float64    `json:"bias"`
}

// LoadModel reads a linear model from a JSON weights file.
func LoadModel(path string) (*LinearModel, error) {
	errFactory := errors.New()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errFactory.Wrap(ErrModelUnavailable, err)
	}

	model := &LinearModel{}
	if err := json.Unmarshal(data, model); err != nil {
		return nil, errFactory.Wrap(ErrInvalidModel, err)
	}

	return model, nil
}

func (m *LinearModel) Predict(features [4]float64) (int, error) {
	score := m.Bias
	for i, w := range m.Weights {
		score += w * features[i]
	}

	if score > 0 {
		return CodeFault, nil
	}

	return CodeOptimal, nil
}

// New builds the classifier for the given model path. An empty or
// unloadable path is a valid configuration: the heuristic variant is
// used for the process lifetime.
func New(modelPath string) Classifier {
	if modelPath == "" {
		logger.Info().Msg("No model configured, using heuristic classifier")
		return NewHeuristic()
	}

	model, err := LoadModel(modelPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", modelPath).Msg("Model load failed, using heuristic classifier")
		return NewHeuristic()
	}

	logger.Info().Str("path", modelPath).Msg("Model loaded")

	return NewTrained(model)
}
