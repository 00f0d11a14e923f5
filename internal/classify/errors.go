package classify

import "codeberg.org/mutker/motormon/internal/errors"

const (
	ErrModelUnavailable = errors.ErrorCode("classify_model_unavailable")
	ErrInvalidModel     = errors.ErrorCode("classify_invalid_model")
	ErrPredictionFailed = errors.ErrorCode("classify_prediction_failed")
)
