package telemetry

import (
	"math"
	"time"

	"codeberg.org/mutker/motormon/internal/classify"
	"codeberg.org/mutker/motormon/internal/diagnose"
	"codeberg.org/mutker/motormon/internal/sim"
)

// Assemble packages one tick into an immutable Record: rms rounded to 4
// decimals, kurtosis to 2, temperature to 1, fan speed truncated to an
// integer. Formatting only; no decision logic.
func Assemble(
	timestamp time.Time,
	observed sim.Observed,
	mode sim.Mode,
	result classify.Result,
	diagnosis diagnose.Diagnosis,
) Record {
	return Record{
		Timestamp:      timestamp,
		RMS:            round(observed.RMS, 4),
		Kurtosis:       round(observed.Kurtosis, 2),
		Temp:           round(observed.Temp, 1),
		FanSpeed:       int(observed.FanSpeed),
		Status:         diagnosis.Label,
		StatusCode:     result.Code,
		Recommendation: diagnosis.Recommendation,
		Mode:           mode.String(),
	}
}

func round(value float64, decimals int) float64 {
	scale := math.Pow10(decimals)

	return math.Round(value*scale) / scale
}
