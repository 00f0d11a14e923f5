package sim_test

import (
	"math/rand"
	"testing"
	"time"

	"codeberg.org/mutker/motormon/internal/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func TestModeControllerBootSequence(t *testing.T) {
	controller := sim.NewModeController(sim.DefaultModeConfig(), rand.New(rand.NewSource(1)))

	assert.Equal(t, sim.ModeBooting, controller.Advance(seconds(0)))
	assert.Equal(t, sim.ModeBooting, controller.Advance(seconds(5)))
	assert.Equal(t, sim.ModeBooting, controller.Advance(seconds(9.9)))
	assert.Equal(t, sim.ModeHealthy, controller.Advance(seconds(10)))
}

func TestModeControllerHealthyUntilFirstDwellRollover(t *testing.T) {
	controller := sim.NewModeController(sim.DefaultModeConfig(), rand.New(rand.NewSource(1)))

	// The dwell timer starts when boot ends, so the mode stays Healthy
	// for all t in (10, 70) regardless of the random source.
	controller.Advance(seconds(10))
	for s := 11.0; s < 70.0; s += 7 {
		require.Equal(t, sim.ModeHealthy, controller.Advance(seconds(s)), "at t=%v", s)
	}
}

func TestModeControllerDwellRollover(t *testing.T) {
	cfg := sim.DefaultModeConfig()
	cfg.FaultProbability = 1.0 // force a fault on every rollover
	controller := sim.NewModeController(cfg, rand.New(rand.NewSource(3)))

	controller.Advance(seconds(10))
	mode := controller.Advance(seconds(70))
	assert.Contains(t, []sim.Mode{sim.ModeBearingWear, sim.ModeUnbalance}, mode)
}

func TestModeControllerSelfTransitionResetsDwellTimer(t *testing.T) {
	cfg := sim.DefaultModeConfig()
	cfg.FaultProbability = 0.0 // every rollover re-selects Healthy
	controller := sim.NewModeController(cfg, rand.New(rand.NewSource(1)))

	controller.Advance(seconds(10))
	assert.Equal(t, sim.ModeHealthy, controller.Advance(seconds(70)))

	// The rollover at t=70 must have reset the dwell timer even though
	// the mode did not change: no re-evaluation before t=130.
	assert.Equal(t, sim.ModeHealthy, controller.Advance(seconds(129)))
	assert.Equal(t, sim.ModeHealthy, controller.Advance(seconds(130)))
}

func TestModeControllerNeverTerminates(t *testing.T) {
	controller := sim.NewModeController(sim.DefaultModeConfig(), rand.New(rand.NewSource(11)))

	for s := 0.0; s < 10000; s += 2 {
		mode := controller.Advance(seconds(s))
		require.Contains(t, []sim.Mode{
			sim.ModeBooting, sim.ModeHealthy, sim.ModeBearingWear, sim.ModeUnbalance,
		}, mode)
	}
}

func TestModeControllerFaultDistribution(t *testing.T) {
	cfg := sim.DefaultModeConfig()
	controller := sim.NewModeController(cfg, rand.New(rand.NewSource(5)))
	controller.Advance(seconds(10))

	healthy, faulty := 0, 0
	for i := 1; i <= 2000; i++ {
		mode := controller.Advance(seconds(10 + float64(i)*60))
		if mode == sim.ModeHealthy {
			healthy++
		} else {
			faulty++
		}
	}

	// 0.30 fault probability; allow a generous margin for a fixed seed
	assert.InDelta(t, 0.30, float64(faulty)/2000.0, 0.05)
}
