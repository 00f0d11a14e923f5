package sim

import (
	"math"
	"math/rand"
)

// ChannelParams holds one per-channel scalar parameter set.
type ChannelParams struct {
	RMS      float64
	Kurtosis float64
	Temp     float64
	FanSpeed float64
}

// DriftConfig parameterizes the drift simulation. Gain controls
// time-to-converge per channel; Noise is the half-range of the uniform
// noise added after integration.
type DriftConfig struct {
	Gain  ChannelParams
	Noise ChannelParams
}

func DefaultDriftConfig() DriftConfig {
	return DriftConfig{
		Gain: ChannelParams{
			RMS:      0.05,
			Kurtosis: 0.05,
			Temp:     0.02, // thermal inertia: temperature lags the other channels
			FanSpeed: 0.05,
		},
		Noise: ChannelParams{
			RMS:      0.005,
			Kurtosis: 0.1,
			Temp:     0.1,
			FanSpeed: 5.0,
		},
	}
}

// Drift advances observed values toward their targets as a first-order
// low-pass filter with additive uniform noise.
type Drift struct {
	cfg DriftConfig
	rng *rand.Rand
}

func NewDrift(cfg DriftConfig, rng *rand.Rand) *Drift {
	return &Drift{
		cfg: cfg,
		rng: rng,
	}
}

// Step integrates one tick: o' = o + (t-o)*gain + noise per channel.
// RMS is clamped to >= 0 and kurtosis to >= 1.0 afterwards; temperature
// and fan speed stay unclamped.
func (d *Drift) Step(observed Observed, target Target) Observed {
	next := Observed{
		RMS:      d.channel(observed.RMS, target.RMS, d.cfg.Gain.RMS, d.cfg.Noise.RMS),
		Kurtosis: d.channel(observed.Kurtosis, target.Kurtosis, d.cfg.Gain.Kurtosis, d.cfg.Noise.Kurtosis),
		Temp:     d.channel(observed.Temp, target.Temp, d.cfg.Gain.Temp, d.cfg.Noise.Temp),
		FanSpeed: d.channel(observed.FanSpeed, target.FanSpeed, d.cfg.Gain.FanSpeed, d.cfg.Noise.FanSpeed),
	}

	next.RMS = math.Max(0.0, next.RMS)
	next.Kurtosis = math.Max(1.0, next.Kurtosis)

	return next
}

func (d *Drift) channel(observed, target, gain, noise float64) float64 {
	return observed + (target-observed)*gain + d.uniform(noise)
}

// uniform draws from [-halfRange, +halfRange].
func (d *Drift) uniform(halfRange float64) float64 {
	if halfRange == 0 {
		return 0
	}

	return (d.rng.Float64()*2 - 1) * halfRange
}
