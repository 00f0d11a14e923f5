package sim_test

import (
	"testing"

	"codeberg.org/mutker/motormon/internal/sim"
	"github.com/stretchr/testify/assert"
)

func TestTargetFor(t *testing.T) {
	assert.Equal(t, sim.Target{RMS: 0.02, Kurtosis: 1.5, Temp: 35.0, FanSpeed: 500}, sim.TargetFor(sim.ModeBooting))
	assert.Equal(t, sim.Target{RMS: 0.05, Kurtosis: 2.2, Temp: 48.0, FanSpeed: 1800}, sim.TargetFor(sim.ModeHealthy))
	assert.Equal(t, sim.Target{RMS: 0.38, Kurtosis: 7.5, Temp: 72.0, FanSpeed: 1750}, sim.TargetFor(sim.ModeBearingWear))
	assert.Equal(t, sim.Target{RMS: 0.55, Kurtosis: 2.8, Temp: 58.0, FanSpeed: 1780}, sim.TargetFor(sim.ModeUnbalance))
}

func TestTargetForUnknownModeFailsClosed(t *testing.T) {
	assert.Equal(t, sim.TargetFor(sim.ModeHealthy), sim.TargetFor(sim.Mode(99)),
		"unrecognized mode must fall back to the healthy target")
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "BOOT_SEQUENCE", sim.ModeBooting.String())
	assert.Equal(t, "HEALTHY", sim.ModeHealthy.String())
	assert.Equal(t, "BEARING_WEAR", sim.ModeBearingWear.String())
	assert.Equal(t, "UNBALANCE", sim.ModeUnbalance.String())
	assert.Equal(t, "UNKNOWN", sim.Mode(99).String())
}
