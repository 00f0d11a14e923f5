package telemetry_test

import (
	"testing"
	"time"

	"codeberg.org/mutker/motormon/internal/classify"
	"codeberg.org/mutker/motormon/internal/diagnose"
	"codeberg.org/mutker/motormon/internal/sim"
	"codeberg.org/mutker/motormon/internal/telemetry"
	"github.com/stretchr/testify/assert"
)

func TestAssemble(t *testing.T) {
	timestamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	observed := sim.Observed{RMS: 0.381234567, Kurtosis: 7.5149, Temp: 72.06, FanSpeed: 1749.9}
	result := classify.Result{Code: classify.CodeFault, Label: classify.LabelCritical}
	diagnosis := diagnose.Diagnosis{
		Label:          classify.LabelCritical,
		Recommendation: diagnose.Guidance(diagnose.CategoryBearingFail),
	}

	record := telemetry.Assemble(timestamp, observed, sim.ModeBearingWear, result, diagnosis)

	assert.Equal(t, timestamp, record.Timestamp)
	assert.InDelta(t, 0.3812, record.RMS, 1e-12, "rms rounds to 4 decimals")
	assert.InDelta(t, 7.51, record.Kurtosis, 1e-12, "kurtosis rounds to 2 decimals")
	assert.InDelta(t, 72.1, record.Temp, 1e-12, "temperature rounds to 1 decimal")
	assert.Equal(t, 1749, record.FanSpeed, "fan speed truncates, not rounds")
	assert.Equal(t, classify.LabelCritical, record.Status)
	assert.Equal(t, classify.CodeFault, record.StatusCode)
	assert.Equal(t, diagnose.Guidance(diagnose.CategoryBearingFail), record.Recommendation)
	assert.Equal(t, "BEARING_WEAR", record.Mode)
}

func TestAssembleNegativeTruncation(t *testing.T) {
	observed := sim.Observed{RMS: 0.05, Kurtosis: 2.2, Temp: 48.0, FanSpeed: 1800.0}
	record := telemetry.Assemble(time.Now(), observed, sim.ModeHealthy,
		classify.Result{Code: classify.CodeOptimal, Label: classify.LabelOptimal},
		diagnose.Diagnosis{Label: classify.LabelOptimal, Recommendation: diagnose.Guidance(diagnose.CategoryOptimal)})

	assert.Equal(t, 1800, record.FanSpeed)
	assert.InDelta(t, 0.05, record.RMS, 1e-12)
}
