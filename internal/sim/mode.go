package sim

import (
	"math/rand"
	"time"
)

// ModeConfig holds the timing and probability parameters of the mode
// state machine. Durations are in seconds.
type ModeConfig struct {
	BootDuration     float64
	DwellInterval    float64
	FaultProbability float64
}

func DefaultModeConfig() ModeConfig {
	return ModeConfig{
		BootDuration:     10.0,
		DwellInterval:    60.0,
		FaultProbability: 0.30,
	}
}

// ModeController selects the current operating mode. It starts in
// ModeBooting, switches to ModeHealthy after the boot duration, and
// thereafter re-evaluates the mode on every dwell rollover. A rollover
// may re-select the current mode; the dwell timer resets either way.
type ModeController struct {
	cfg            ModeConfig
	rng            *rand.Rand
	mode           Mode
	lastTransition float64
}

func NewModeController(cfg ModeConfig, rng *rand.Rand) *ModeController {
	return &ModeController{
		cfg:  cfg,
		rng:  rng,
		mode: ModeBooting,
	}
}

// Advance evaluates the state machine at the given elapsed time and
// returns the current mode.
func (c *ModeController) Advance(now time.Duration) Mode {
	elapsed := now.Seconds()

	if c.mode == ModeBooting {
		if elapsed >= c.cfg.BootDuration {
			c.mode = ModeHealthy
			c.lastTransition = elapsed
		}

		return c.mode
	}

	if elapsed-c.lastTransition >= c.cfg.DwellInterval {
		c.mode = c.draw()
		c.lastTransition = elapsed
	}

	return c.mode
}

// Mode returns the current mode without advancing the state machine.
func (c *ModeController) Mode() Mode {
	return c.mode
}

func (c *ModeController) draw() Mode {
	if c.rng.Float64() >= c.cfg.FaultProbability {
		return ModeHealthy
	}

	if c.rng.Float64() < 0.5 {
		return ModeBearingWear
	}

	return ModeUnbalance
}
